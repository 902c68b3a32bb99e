// internal/handlers/export_handler.go
package handlers

import (
    "context"
    "encoding/json"
    "io"
    "log"
    "net/http"

    "brandtruth/internal/demo"
    "brandtruth/internal/pipeline"
)

// Uploader archives a generated bundle; satisfied by services.BundleUploader.
type Uploader interface {
    Configured() bool
    Upload(ctx context.Context, kind string, body []byte) (key, url string, err error)
}

// ExportHandler produces downloadable bundles: the full campaign export and
// the compliance proof pack. The backend generates the bundle; we archive it
// to S3 and return where it lives. Without storage configured the bundle is
// returned inline.
type ExportHandler struct {
    client   *pipeline.Client
    uploader Uploader
}

func NewExportHandler(client *pipeline.Client, uploader Uploader) *ExportHandler {
    return &ExportHandler{client: client, uploader: uploader}
}

type BundleResponse struct {
    Key    string          `json:"key,omitempty"`
    URL    string          `json:"url,omitempty"`
    Bundle json.RawMessage `json:"bundle,omitempty"`
}

// CreateExport handles POST /api/v1/exports
// @Tags Exports
// @Summary Generate and archive a full campaign export
// @Accept json
// @Produce json
// @Param demo query boolean false "Serve demo fixture"
// @Success 201 {object} BundleResponse
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/exports [post]
func (h *ExportHandler) CreateExport(w http.ResponseWriter, r *http.Request) {
    h.createBundle(w, r, "exports", "export", (*pipeline.Client).ExportAll)
}

// CreateProof handles POST /api/v1/proofs
// @Tags Exports
// @Summary Generate and archive a compliance proof pack
// @Accept json
// @Produce json
// @Param demo query boolean false "Serve demo fixture"
// @Success 201 {object} BundleResponse
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/proofs [post]
func (h *ExportHandler) CreateProof(w http.ResponseWriter, r *http.Request) {
    h.createBundle(w, r, "proofs", "proof", (*pipeline.Client).GenerateProof)
}

func (h *ExportHandler) createBundle(w http.ResponseWriter, r *http.Request, kind, fixture string, call toolCall) {
    var bundle json.RawMessage

    if demoRequested(r) {
        bundle = demo.ToolPayload(fixture)
    } else {
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

        bundle, err = call(h.client, r.Context(), payload)
        if err != nil {
            log.Printf("exports: %s generation failed: %v", kind, err)
            writeJSONErrorResponse(w, http.StatusBadGateway, "backend_error", err.Error())
            return
        }
    }

    resp := BundleResponse{Bundle: bundle}
    if h.uploader != nil && h.uploader.Configured() {
        key, url, err := h.uploader.Upload(r.Context(), kind, bundle)
        if err != nil {
            log.Printf("exports: archiving %s bundle: %v", kind, err)
            writeJSONErrorResponse(w, http.StatusInternalServerError, "archive_failed", "Failed to archive bundle")
            return
        }
        resp = BundleResponse{Key: key, URL: url}
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(resp)
}
