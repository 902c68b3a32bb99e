package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"brandtruth/internal/pipeline"
	"brandtruth/internal/wizard"
)

func newWizardRouter(t *testing.T, forceDemo bool) (*chi.Mux, *wizard.Store) {
	t.Helper()
	store := wizard.NewStore()
	client := pipeline.NewClient("http://127.0.0.1:1", time.Second)
	runner := wizard.NewRunner(store, client, nil)
	runner.SetDemoDelay(0)
	h := NewWizardHandler(store, runner, client, forceDemo)

	router := chi.NewRouter()
	router.Route("/wizard/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Post("/submit", h.Submit)
			r.Post("/publish", h.Publish)
			r.Post("/reset", h.Reset)
			r.Route("/variants", func(r chi.Router) {
				r.Post("/approve-all", h.ApproveAll)
				r.Post("/{variantID}/approve", h.ApproveVariant)
				r.Post("/{variantID}/reject", h.RejectVariant)
				r.Post("/{variantID}/reset", h.ResetVariant)
			})
		})
	})
	return router, store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeSession(t *testing.T, rr *httptest.ResponseRecorder) wizard.Session {
	t.Helper()
	var s wizard.Session
	if err := json.Unmarshal(rr.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode session: %v (body %s)", err, rr.Body.String())
	}
	return s
}

// pollResults waits for the background run to land the session in results.
func pollResults(t *testing.T, router http.Handler, id string) wizard.Session {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		rr := doJSON(t, router, http.MethodGet, "/wizard/sessions/"+id, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("poll: status %d", rr.Code)
		}
		s := decodeSession(t, rr)
		if s.Step == wizard.StepResults {
			return s
		}
		if s.Step == wizard.StepInput && s.Error != "" {
			t.Fatalf("run failed: %s", s.Error)
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("run never reached results")
	return wizard.Session{}
}

func TestCreateSessionForceDemo(t *testing.T) {
	router, _ := newWizardRouter(t, true)

	rr := doJSON(t, router, http.MethodPost, "/wizard/sessions", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	s := decodeSession(t, rr)
	if s.ID == "" {
		t.Fatalf("expected a session id")
	}
	if !s.DemoMode {
		t.Fatalf("expected demo mode forced on")
	}
	if s.Step != wizard.StepInput {
		t.Fatalf("expected input step, got %s", s.Step)
	}
}

func TestCreateSessionProbesUnreachableBackend(t *testing.T) {
	router, _ := newWizardRouter(t, false)

	rr := doJSON(t, router, http.MethodPost, "/wizard/sessions", map[string]bool{"demo_mode": false})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	s := decodeSession(t, rr)
	if s.APIAvailable {
		t.Fatalf("probe against a dead port must report unavailable")
	}
}

func TestSubmitValidation(t *testing.T) {
	router, store := newWizardRouter(t, true)
	s := store.Create(false, true)

	rr := doJSON(t, router, http.MethodPost, "/wizard/sessions/"+s.ID+"/submit", map[string]string{"url": "not a url"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	router, _ := newWizardRouter(t, true)
	rr := doJSON(t, router, http.MethodPost, "/wizard/sessions/nope/submit", map[string]string{"url": "https://careerfied.ai"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestWizardFullDemoFlow(t *testing.T) {
	router, store := newWizardRouter(t, true)
	created := store.Create(false, true)

	rr := doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/submit", map[string]string{"url": "https://careerfied.ai"})
	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rr.Code, rr.Body.String())
	}
	if s := decodeSession(t, rr); s.Step != wizard.StepProcessing {
		t.Fatalf("expected processing in the 202 body, got %s", s.Step)
	}

	s := pollResults(t, router, created.ID)
	if len(s.Variants) != 5 {
		t.Fatalf("expected 5 variants, got %d", len(s.Variants))
	}
	if s.Brand == nil || s.Brand.BrandName != "Careerfied" {
		t.Fatalf("expected brand Careerfied, got %+v", s.Brand)
	}

	// Publishing with nothing approved is refused.
	rr = doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/publish", nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/variants/approve-all", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("approve all: expected 200, got %d", rr.Code)
	}
	if s := decodeSession(t, rr); s.ApprovedCount() != 5 {
		t.Fatalf("expected 5 approved, got %d", s.ApprovedCount())
	}

	rr = doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/publish", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	s = decodeSession(t, rr)
	if s.Step != wizard.StepLive {
		t.Fatalf("expected live, got %s", s.Step)
	}
	if s.PublishResult == nil || !s.PublishResult.Demo {
		t.Fatalf("expected a demo publish result, got %+v", s.PublishResult)
	}

	// Start over drops everything but keeps the session usable.
	rr = doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/reset", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", rr.Code)
	}
	if s := decodeSession(t, rr); s.Step != wizard.StepInput || len(s.Variants) != 0 {
		t.Fatalf("expected a clean input session after reset, got %+v", s)
	}
}

func TestVariantReviewEndpoints(t *testing.T) {
	router, store := newWizardRouter(t, true)
	created := store.Create(false, true)
	doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/submit", map[string]string{"url": "https://careerfied.ai"})
	pollResults(t, router, created.ID)

	rr := doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/variants/v2/approve", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d", rr.Code)
	}
	if s := decodeSession(t, rr); s.ApprovedCount() != 1 {
		t.Fatalf("expected 1 approved")
	}

	rr = doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/variants/v2/reset", nil)
	if s := decodeSession(t, rr); s.ApprovedCount() != 0 {
		t.Fatalf("expected approval cleared")
	}

	rr = doJSON(t, router, http.MethodPost, "/wizard/sessions/"+created.ID+"/variants/v99/reject", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown variant: expected 404, got %d", rr.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	router, store := newWizardRouter(t, true)
	created := store.Create(false, true)

	rr := doJSON(t, router, http.MethodDelete, "/wizard/sessions/"+created.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	rr = doJSON(t, router, http.MethodGet, "/wizard/sessions/"+created.ID, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}
