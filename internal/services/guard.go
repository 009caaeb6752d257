package services

import (
	"context"
	"net/http"
	"time"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
	"github.com/TamerMomtaz/agentee-backend/pkg/logger"
)

const (
	guardTimeout     = 10 * time.Second
	degradedLatency  = 2 * time.Second
	guardHistoryMax  = 100
	defaultGuardHist = 50
)

type guardStore interface {
	SaveResults(ctx context.Context, results []models.GuardResult) error
	ListRecent(ctx context.Context, limit int) ([]models.GuardResult, error)
}

// guardService pings the monitored ecosystem services and classifies each
// as healthy, degraded, or down.
type guardService struct {
	services   []dto.GuardService
	store      guardStore
	httpClient *http.Client
	clockNow   func() time.Time
}

func NewGuardService(services []dto.GuardService, store guardStore) *guardService {
	return &guardService{
		services:   services,
		store:      store,
		httpClient: &http.Client{Timeout: guardTimeout},
		clockNow:   time.Now,
	}
}

// Check pings every monitored service now. Persisting results is
// best-effort; the live results always come back.
func (s *guardService) Check(ctx context.Context) (dto.GuardCheckResponse, error) {
	log := logger.FromContext(ctx)

	results := make([]models.GuardResult, 0, len(s.services))
	healthy := 0
	for _, svc := range s.services {
		result := s.ping(ctx, svc)
		if result.Status == models.GuardHealthy {
			healthy++
		}
		results = append(results, result)
	}

	if s.store != nil && len(results) > 0 {
		if err := s.store.SaveResults(ctx, results); err != nil {
			log.Warn("guard results store failed", "error", err)
		}
	}

	log.Info("guard check completed", "healthy", healthy, "total", len(results))
	return dto.GuardCheckResponse{
		Results: results,
		Healthy: healthy,
		Total:   len(results),
	}, nil
}

// Status returns the most recent stored result per monitored service.
func (s *guardService) Status(ctx context.Context) (dto.GuardCheckResponse, error) {
	recent, err := s.store.ListRecent(ctx, guardHistoryMax)
	if err != nil {
		return dto.GuardCheckResponse{}, err
	}

	latest := make(map[string]models.GuardResult, len(s.services))
	for _, result := range recent {
		if _, seen := latest[result.Service]; !seen {
			latest[result.Service] = result
		}
	}

	results := make([]models.GuardResult, 0, len(latest))
	healthy := 0
	for _, svc := range s.services {
		result, ok := latest[svc.Name]
		if !ok {
			continue
		}
		if result.Status == models.GuardHealthy {
			healthy++
		}
		results = append(results, result)
	}

	return dto.GuardCheckResponse{
		Results: results,
		Healthy: healthy,
		Total:   len(results),
	}, nil
}

func (s *guardService) History(ctx context.Context, limit int) (dto.GuardHistoryResponse, error) {
	if limit <= 0 || limit > guardHistoryMax {
		limit = defaultGuardHist
	}
	checks, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return dto.GuardHistoryResponse{}, err
	}
	if checks == nil {
		checks = []models.GuardResult{}
	}
	return dto.GuardHistoryResponse{Checks: checks, Total: len(checks)}, nil
}

func (s *guardService) ping(ctx context.Context, svc dto.GuardService) models.GuardResult {
	result := models.GuardResult{
		Service:   svc.Name,
		URL:       svc.URL,
		CheckedAt: s.clockNow(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.URL, nil)
	if err != nil {
		result.Status = models.GuardDown
		result.Error = err.Error()
		return result
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	latency := time.Since(start)
	result.LatencyMs = latency.Milliseconds()

	if err != nil {
		result.Status = models.GuardDown
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.HTTPCode = resp.StatusCode
	switch {
	case resp.StatusCode >= 500:
		result.Status = models.GuardDown
	case resp.StatusCode >= 400 || latency > degradedLatency:
		result.Status = models.GuardDegraded
	default:
		result.Status = models.GuardHealthy
	}
	return result
}
