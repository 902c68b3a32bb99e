package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"brandtruth/internal/pipeline"
)

type fakeUploader struct {
	configured bool
	err        error
	kind       string
	body       []byte
}

func (f *fakeUploader) Configured() bool { return f.configured }

func (f *fakeUploader) Upload(ctx context.Context, kind string, body []byte) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	f.kind = kind
	f.body = body
	return kind + "/bundle-1.json", "https://cdn.test/" + kind + "/bundle-1.json", nil
}

func newExportRouter(client *pipeline.Client, uploader Uploader) *chi.Mux {
	h := NewExportHandler(client, uploader)
	router := chi.NewRouter()
	router.Post("/exports", h.CreateExport)
	router.Post("/proofs", h.CreateProof)
	return router
}

func TestCreateExportDemoArchivesBundle(t *testing.T) {
	up := &fakeUploader{configured: true}
	router := newExportRouter(pipeline.NewClient("http://127.0.0.1:1", time.Second), up)

	rr := doJSON(t, router, http.MethodPost, "/exports?demo=1", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp BundleResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Key != "exports/bundle-1.json" {
		t.Fatalf("unexpected key %q", resp.Key)
	}
	if resp.URL == "" {
		t.Fatalf("expected an archive URL")
	}
	if len(resp.Bundle) != 0 {
		t.Fatalf("archived responses should not inline the bundle")
	}
	if up.kind != "exports" {
		t.Fatalf("uploader got kind %q", up.kind)
	}
}

func TestCreateProofWithoutStorageReturnsInline(t *testing.T) {
	router := newExportRouter(pipeline.NewClient("http://127.0.0.1:1", time.Second), &fakeUploader{configured: false})

	rr := doJSON(t, router, http.MethodPost, "/proofs?demo=1", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	var resp BundleResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Key != "" || resp.URL != "" {
		t.Fatalf("expected no archive location, got %+v", resp)
	}
	var bundle struct {
		Demo        bool   `json:"demo"`
		ProofPackID string `json:"proof_pack_id"`
	}
	if err := json.Unmarshal(resp.Bundle, &bundle); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if !bundle.Demo || bundle.ProofPackID == "" {
		t.Fatalf("expected inline demo proof pack, got %s", string(resp.Bundle))
	}
}

func TestCreateExportCallsBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/export/all" {
			t.Errorf("unexpected backend path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"export_id": "ex-9", "assets": 5})
	}))
	defer srv.Close()

	router := newExportRouter(pipeline.NewClient(srv.URL, time.Second), &fakeUploader{configured: false})
	rr := doJSON(t, router, http.MethodPost, "/exports", map[string]string{"session_id": "s1"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp BundleResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)
	var bundle struct {
		ExportID string `json:"export_id"`
	}
	if err := json.Unmarshal(resp.Bundle, &bundle); err != nil || bundle.ExportID != "ex-9" {
		t.Fatalf("expected backend bundle inline, got %s", string(resp.Bundle))
	}
}

func TestCreateExportBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	router := newExportRouter(pipeline.NewClient(srv.URL, time.Second), nil)
	rr := doJSON(t, router, http.MethodPost, "/exports", nil)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestCreateExportUploadFailure(t *testing.T) {
	up := &fakeUploader{configured: true, err: errors.New("bucket denied")}
	router := newExportRouter(pipeline.NewClient("http://127.0.0.1:1", time.Second), up)

	rr := doJSON(t, router, http.MethodPost, "/exports?demo=1", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}
