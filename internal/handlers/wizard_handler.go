// internal/handlers/wizard_handler.go
package handlers

import (
    "context"
    "encoding/json"
    "errors"
    "log"
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/go-playground/validator/v10"

    "brandtruth/internal/pipeline"
    "brandtruth/internal/wizard"
)

type WizardHandler struct {
    store     *wizard.Store
    runner    *wizard.Runner
    client    *pipeline.Client
    validator *validator.Validate
    forceDemo bool
}

func NewWizardHandler(store *wizard.Store, runner *wizard.Runner, client *pipeline.Client, forceDemo bool) *WizardHandler {
    return &WizardHandler{
        store:     store,
        runner:    runner,
        client:    client,
        validator: validator.New(),
        forceDemo: forceDemo,
    }
}

type CreateSessionRequest struct {
    DemoMode bool `json:"demo_mode"`
}

type SubmitRequest struct {
    URL      string `json:"url" validate:"required,url"`
    Industry string `json:"industry" validate:"omitempty,alphanum"`
}

// CreateSession opens a wizard session. The backend health probe runs once
// here; its outcome pins live-vs-demo for the session's whole lifetime.
// @Tags Wizard
// @Summary Create a wizard session
// @Accept json
// @Produce json
// @Success 201 {object} wizard.Session
// @Router /api/v1/wizard/sessions [post]
func (h *WizardHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
    var req CreateSessionRequest
    if r.Body != nil {
        // Body is optional; a bare POST means defaults.
        _ = json.NewDecoder(r.Body).Decode(&req)
    }

    apiAvailable := false
    demoMode := req.DemoMode || h.forceDemo
    if !demoMode {
        apiAvailable = h.client.Health(r.Context())
        if !apiAvailable {
            log.Printf("wizard: backend %s unreachable, session will use demo data", h.client.BaseURL())
        }
    }

    session := h.store.Create(apiAvailable, demoMode)

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(session)
}

// GetSession returns the current snapshot; the client polls this while a
// run is in flight.
// @Tags Wizard
// @Summary Get a wizard session snapshot
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/wizard/sessions/{id} [get]
func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    session, err := h.store.Get(id)
    if err != nil {
        writeJSONErrorResponse(w, http.StatusNotFound, "session_not_found", "Session not found")
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(session)
}

// Submit starts the processing run for a session. The five stages execute on
// a background goroutine; the response is the session already in the
// processing step.
// @Tags Wizard
// @Summary Submit a URL and start the pipeline run
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SubmitRequest true "Target website"
// @Success 202 {object} wizard.Session
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/wizard/sessions/{id}/submit [post]
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    var req SubmitRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
        return
    }
    if err := h.validator.Struct(req); err != nil {
        writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
        return
    }

    session, err := h.runner.Submit(id, req.URL, req.Industry)
    if err != nil {
        h.writeWizardError(w, err)
        return
    }

    // The run survives the HTTP request; clients observe it by polling.
    go h.runner.Run(context.Background(), session.ID)

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusAccepted)
    json.NewEncoder(w).Encode(session)
}

// @Tags Wizard
// @Summary Approve a variant
// @Produce json
// @Param id path string true "Session ID"
// @Param variantID path string true "Variant ID"
// @Success 200 {object} wizard.Session
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/wizard/sessions/{id}/variants/{variantID}/approve [post]
func (h *WizardHandler) ApproveVariant(w http.ResponseWriter, r *http.Request) {
    h.dispatchReview(w, r, wizard.VariantApproved{ID: chi.URLParam(r, "variantID")})
}

// @Tags Wizard
// @Summary Reject a variant
// @Produce json
// @Param id path string true "Session ID"
// @Param variantID path string true "Variant ID"
// @Success 200 {object} wizard.Session
// @Router /api/v1/wizard/sessions/{id}/variants/{variantID}/reject [post]
func (h *WizardHandler) RejectVariant(w http.ResponseWriter, r *http.Request) {
    h.dispatchReview(w, r, wizard.VariantRejected{ID: chi.URLParam(r, "variantID")})
}

// @Tags Wizard
// @Summary Reset a variant back to pending
// @Produce json
// @Param id path string true "Session ID"
// @Param variantID path string true "Variant ID"
// @Success 200 {object} wizard.Session
// @Router /api/v1/wizard/sessions/{id}/variants/{variantID}/reset [post]
func (h *WizardHandler) ResetVariant(w http.ResponseWriter, r *http.Request) {
    h.dispatchReview(w, r, wizard.VariantStatusCleared{ID: chi.URLParam(r, "variantID")})
}

// ApproveAll sets every variant to approved, including previously rejected
// ones. No confirmation step.
// @Tags Wizard
// @Summary Approve all variants
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Router /api/v1/wizard/sessions/{id}/variants/approve-all [post]
func (h *WizardHandler) ApproveAll(w http.ResponseWriter, r *http.Request) {
    h.dispatchReview(w, r, wizard.AllVariantsApproved{})
}

func (h *WizardHandler) dispatchReview(w http.ResponseWriter, r *http.Request, ev wizard.Event) {
    id := chi.URLParam(r, "id")
    session, err := h.store.Dispatch(id, ev)
    if err != nil {
        h.writeWizardError(w, err)
        return
    }
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(session)
}

// Publish pushes the primary approved variant to Meta. Refuses with 409 when
// nothing is approved.
// @Tags Wizard
// @Summary Publish the primary approved variant
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 409 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/wizard/sessions/{id}/publish [post]
func (h *WizardHandler) Publish(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    session, err := h.runner.Publish(r.Context(), id)
    if err != nil {
        h.writeWizardError(w, err)
        return
    }

    if session.Step != wizard.StepLive {
        // The publish call failed; the machine already rolled back to
        // results and stored the message.
        writeJSONErrorResponse(w, http.StatusBadGateway, "publish_failed", session.Error)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(session)
}

// Reset is "Start Over" / "Launch Another": full state replacement keeping
// only the probed availability flag.
// @Tags Wizard
// @Summary Reset a session back to input
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Router /api/v1/wizard/sessions/{id}/reset [post]
func (h *WizardHandler) Reset(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    session, err := h.store.Dispatch(id, wizard.SessionReset{})
    if err != nil {
        h.writeWizardError(w, err)
        return
    }
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(session)
}

// @Tags Wizard
// @Summary Discard a session
// @Param id path string true "Session ID"
// @Success 204
// @Router /api/v1/wizard/sessions/{id} [delete]
func (h *WizardHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
    h.store.Delete(chi.URLParam(r, "id"))
    w.WriteHeader(http.StatusNoContent)
}

func (h *WizardHandler) writeWizardError(w http.ResponseWriter, err error) {
    switch {
    case errors.Is(err, wizard.ErrSessionNotFound):
        writeJSONErrorResponse(w, http.StatusNotFound, "session_not_found", "Session not found")
    case errors.Is(err, wizard.ErrVariantNotFound):
        writeJSONErrorResponse(w, http.StatusNotFound, "variant_not_found", "Variant not found")
    case errors.Is(err, wizard.ErrURLRequired):
        writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "url is required")
    case errors.Is(err, wizard.ErrNoApprovedVariants):
        writeJSONErrorResponse(w, http.StatusConflict, "no_approved_variants", "Approve at least one variant before publishing")
    case errors.Is(err, wizard.ErrInvalidTransition):
        writeJSONErrorResponse(w, http.StatusConflict, "invalid_transition", err.Error())
    default:
        log.Printf("wizard handler: %v", err)
        writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
    }
}
