// internal/handlers/launch_handler.go
package handlers

import (
    "database/sql"
    "encoding/json"
    "errors"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    "brandtruth/internal/interfaces"
    "brandtruth/internal/models"
)

type LaunchHandler struct {
    repo interfaces.LaunchRepository
}

func NewLaunchHandler(repo interfaces.LaunchRepository) *LaunchHandler {
    return &LaunchHandler{repo: repo}
}

// ListLaunches handles GET /api/v1/launches
// @Tags Launches
// @Summary List published campaigns, most recent first
// @Produce json
// @Param status query string false "Filter by status" Enums(live, paused, ended)
// @Param demo query boolean false "Filter by demo flag"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Launch
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/launches [get]
func (h *LaunchHandler) ListLaunches(w http.ResponseWriter, r *http.Request) {
    filter := interfaces.LaunchFilter{
        Status: r.URL.Query().Get("status"),
        Limit:  100,
    }
    if v := r.URL.Query().Get("demo"); v != "" {
        demo := v == "true" || v == "1"
        filter.Demo = &demo
    }
    if v := r.URL.Query().Get("limit"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            filter.Limit = n
        }
    }
    if v := r.URL.Query().Get("offset"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            filter.Offset = n
        }
    }

    launches, err := h.repo.List(r.Context(), filter)
    if err != nil {
        writeJSONErrorResponse(w, http.StatusInternalServerError, "list_launches_failed", "Failed to list launches")
        return
    }
    if launches == nil {
        launches = []*models.Launch{}
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(launches)
}

// GetLaunch handles GET /api/v1/launches/{id}
// @Tags Launches
// @Summary Get one published campaign
// @Produce json
// @Param id path string true "Launch ID"
// @Success 200 {object} models.Launch
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/launches/{id} [get]
func (h *LaunchHandler) GetLaunch(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if id == "" {
        writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "Launch ID is required")
        return
    }

    launch, err := h.repo.GetByID(r.Context(), id)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            writeJSONErrorResponse(w, http.StatusNotFound, "launch_not_found", "Launch not found")
            return
        }
        writeJSONErrorResponse(w, http.StatusInternalServerError, "get_launch_failed", "Failed to fetch launch")
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(launch)
}

// GetSummary handles GET /api/v1/launches/summary
// @Tags Launches
// @Summary Aggregate stats for the dashboard
// @Produce json
// @Success 200 {object} models.LaunchSummary
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/launches/summary [get]
func (h *LaunchHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
    summary, err := h.repo.Summary(r.Context(), interfaces.LaunchFilter{})
    if err != nil {
        writeJSONErrorResponse(w, http.StatusInternalServerError, "launch_summary_failed", "Failed to compute summary")
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(summary)
}
