package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
	"github.com/TamerMomtaz/agentee-backend/pkg/helpers"
)

type stubGuardStore struct {
	saved     []models.GuardResult
	saveErr   error
	recent    []models.GuardResult
	recentErr error
}

func (s *stubGuardStore) SaveResults(ctx context.Context, results []models.GuardResult) error {
	s.saved = append(s.saved, results...)
	return s.saveErr
}

func (s *stubGuardStore) ListRecent(ctx context.Context, limit int) ([]models.GuardResult, error) {
	return s.recent, s.recentErr
}

func TestGuardCheckClassifiesServices(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	degraded := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer degraded.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	store := &stubGuardStore{}
	svc := NewGuardService([]dto.GuardService{
		{Name: "frontend", URL: healthy.URL},
		{Name: "docs", URL: degraded.URL},
		{Name: "api", URL: down.URL},
	}, store)

	resp, err := svc.Check(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 3 || resp.Healthy != 1 {
		t.Fatalf("expected 1/3 healthy, got %d/%d", resp.Healthy, resp.Total)
	}

	byName := map[string]models.GuardResult{}
	for _, r := range resp.Results {
		byName[r.Service] = r
	}
	if byName["frontend"].Status != models.GuardHealthy {
		t.Fatalf("frontend should be healthy: %+v", byName["frontend"])
	}
	if byName["docs"].Status != models.GuardDegraded || byName["docs"].HTTPCode != http.StatusNotFound {
		t.Fatalf("docs should be degraded: %+v", byName["docs"])
	}
	if byName["api"].Status != models.GuardDown {
		t.Fatalf("api should be down: %+v", byName["api"])
	}

	if len(store.saved) != 3 {
		t.Fatalf("results not persisted: %d", len(store.saved))
	}
}

func TestGuardCheckUnreachableService(t *testing.T) {
	svc := NewGuardService([]dto.GuardService{
		{Name: "ghost", URL: "http://127.0.0.1:1/health"},
	}, &stubGuardStore{})

	resp, err := svc.Check(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := resp.Results[0]
	if result.Status != models.GuardDown || result.Error == "" {
		t.Fatalf("unreachable service should be down with an error: %+v", result)
	}
}

func TestGuardCheckSurvivesStoreFailure(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	store := &stubGuardStore{saveErr: errors.New("firestore down")}
	svc := NewGuardService([]dto.GuardService{{Name: "frontend", URL: healthy.URL}}, store)

	resp, err := svc.Check(helpers.TestCtx())
	if err != nil {
		t.Fatalf("store failure must not fail the check: %v", err)
	}
	if resp.Healthy != 1 {
		t.Fatalf("live results should still come back: %+v", resp)
	}
}

func TestGuardStatusPicksLatestPerService(t *testing.T) {
	now := time.Now()
	store := &stubGuardStore{recent: []models.GuardResult{
		{Service: "api", Status: models.GuardHealthy, CheckedAt: now},
		{Service: "frontend", Status: models.GuardDown, CheckedAt: now},
		{Service: "api", Status: models.GuardDown, CheckedAt: now.Add(-15 * time.Minute)},
	}}
	svc := NewGuardService([]dto.GuardService{
		{Name: "api", URL: "http://api"},
		{Name: "frontend", URL: "http://frontend"},
	}, store)

	resp, err := svc.Status(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 2 || resp.Healthy != 1 {
		t.Fatalf("expected 1/2 healthy, got %d/%d", resp.Healthy, resp.Total)
	}
	for _, r := range resp.Results {
		if r.Service == "api" && r.Status != models.GuardHealthy {
			t.Fatalf("expected newest api result to win: %+v", r)
		}
	}
}

func TestGuardHistoryClampsLimit(t *testing.T) {
	store := &stubGuardStore{}
	svc := NewGuardService(nil, store)

	resp, err := svc.History(helpers.TestCtx(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Checks == nil {
		t.Fatalf("checks must be an empty slice, not nil")
	}
}
