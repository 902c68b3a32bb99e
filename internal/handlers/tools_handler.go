// internal/handlers/tools_handler.go
package handlers

import (
    "context"
    "encoding/json"
    "io"
    "log"
    "net/http"

    "github.com/go-chi/chi/v5"

    "brandtruth/internal/demo"
    "brandtruth/internal/pipeline"
)

// ToolsHandler proxies the auxiliary product surfaces (hooks generator,
// attention heatmap, landing analyzer, and so on) straight through the
// gateway client. Payloads belong to the backend contract and pass through
// untyped; ?demo=1 serves the canned fixture instead.
type ToolsHandler struct {
    client *pipeline.Client
}

func NewToolsHandler(client *pipeline.Client) *ToolsHandler {
    return &ToolsHandler{client: client}
}

type toolCall func(*pipeline.Client, context.Context, any) (json.RawMessage, error)

var toolCalls = map[string]toolCall{
    "hooks":     (*pipeline.Client).GenerateHooks,
    "attention": (*pipeline.Client).AnalyzeAttention,
    "landing":   (*pipeline.Client).AnalyzeLanding,
    "intel":     (*pipeline.Client).AnalyzeIntel,
    "fatigue":   (*pipeline.Client).PredictFatigue,
    "abtest":    (*pipeline.Client).PlanABTest,
    "social":    (*pipeline.Client).CollectSocial,
    "video":     (*pipeline.Client).GenerateVideo,
    "iterate":   (*pipeline.Client).AnalyzeIteration,
}

// Invoke handles POST /api/v1/tools/{tool}
// @Tags Tools
// @Summary Invoke an auxiliary analysis tool
// @Accept json
// @Produce json
// @Param tool path string true "Tool name" Enums(hooks, attention, landing, intel, fatigue, abtest, social, video, iterate)
// @Param demo query boolean false "Serve demo fixture"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/tools/{tool} [post]
func (h *ToolsHandler) Invoke(w http.ResponseWriter, r *http.Request) {
    tool := chi.URLParam(r, "tool")
    call, ok := toolCalls[tool]
    if !ok {
        writeJSONErrorResponse(w, http.StatusNotFound, "unknown_tool", "Unknown tool: "+tool)
        return
    }

    if demoRequested(r) {
        w.Header().Set("Content-Type", "application/json")
        w.Write(demo.ToolPayload(tool))
        return
    }

    var payload any
    body, err := io.ReadAll(r.Body)
    if err != nil {
        writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to read request body")
        return
    }
    if len(body) > 0 {
        if err := json.Unmarshal(body, &payload); err != nil {
            writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Request body must be JSON")
            return
        }
    }

    result, err := call(h.client, r.Context(), payload)
    if err != nil {
        log.Printf("tools: %s failed: %v", tool, err)
        writeJSONErrorResponse(w, http.StatusBadGateway, "backend_error", err.Error())
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.Write(result)
}

func demoRequested(r *http.Request) bool {
    v := r.URL.Query().Get("demo")
    return v == "1" || v == "true"
}
