package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"brandtruth/internal/interfaces"
	"brandtruth/internal/models"
)

type stubLaunchRepo struct {
	launches   []*models.Launch
	summary    *models.LaunchSummary
	lastFilter interfaces.LaunchFilter
	listErr    error
	getErr     error
}

func (s *stubLaunchRepo) Create(ctx context.Context, launch *models.Launch) error { return nil }

func (s *stubLaunchRepo) GetByID(ctx context.Context, id string) (*models.Launch, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, l := range s.launches {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubLaunchRepo) List(ctx context.Context, filter interfaces.LaunchFilter) ([]*models.Launch, error) {
	s.lastFilter = filter
	return s.launches, s.listErr
}

func (s *stubLaunchRepo) Summary(ctx context.Context, filter interfaces.LaunchFilter) (*models.LaunchSummary, error) {
	return s.summary, nil
}

func newLaunchRouter(repo interfaces.LaunchRepository) *chi.Mux {
	h := NewLaunchHandler(repo)
	router := chi.NewRouter()
	router.Route("/launches", func(r chi.Router) {
		r.Get("/", h.ListLaunches)
		r.Get("/summary", h.GetSummary)
		r.Get("/{id}", h.GetLaunch)
	})
	return router
}

func TestListLaunchesEmptyIsJSONArray(t *testing.T) {
	router := newLaunchRouter(&stubLaunchRepo{})
	rr := doJSON(t, router, http.MethodGet, "/launches", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestListLaunchesAppliesQueryFilters(t *testing.T) {
	repo := &stubLaunchRepo{}
	router := newLaunchRouter(repo)

	rr := doJSON(t, router, http.MethodGet, "/launches?status=live&demo=true&limit=10&offset=20", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	f := repo.lastFilter
	if f.Status != "live" {
		t.Fatalf("expected status filter live, got %q", f.Status)
	}
	if f.Demo == nil || !*f.Demo {
		t.Fatalf("expected demo filter true, got %v", f.Demo)
	}
	if f.Limit != 10 || f.Offset != 20 {
		t.Fatalf("expected limit 10 offset 20, got %d/%d", f.Limit, f.Offset)
	}
}

func TestListLaunchesDefaultLimit(t *testing.T) {
	repo := &stubLaunchRepo{}
	router := newLaunchRouter(repo)
	doJSON(t, router, http.MethodGet, "/launches", nil)
	if repo.lastFilter.Limit != 100 {
		t.Fatalf("expected default limit 100, got %d", repo.lastFilter.Limit)
	}
}

func TestListLaunchesRepoError(t *testing.T) {
	router := newLaunchRouter(&stubLaunchRepo{listErr: errors.New("db down")})
	rr := doJSON(t, router, http.MethodGet, "/launches", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestGetLaunch(t *testing.T) {
	repo := &stubLaunchRepo{launches: []*models.Launch{
		{ID: "l1", BrandName: "Careerfied", Status: models.LaunchStatusLive, DailyBudget: 30},
	}}
	router := newLaunchRouter(repo)

	rr := doJSON(t, router, http.MethodGet, "/launches/l1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var got models.Launch
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.BrandName != "Careerfied" {
		t.Fatalf("unexpected launch: %+v", got)
	}

	rr = doJSON(t, router, http.MethodGet, "/launches/missing", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestGetSummaryNotShadowedByIDRoute(t *testing.T) {
	repo := &stubLaunchRepo{summary: &models.LaunchSummary{LiveLaunchCount: 3, TotalDailyBudget: 90, DemoLaunchCount: 1}}
	router := newLaunchRouter(repo)

	rr := doJSON(t, router, http.MethodGet, "/launches/summary", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var got models.LaunchSummary
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.LiveLaunchCount != 3 || got.TotalDailyBudget != 90 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}
