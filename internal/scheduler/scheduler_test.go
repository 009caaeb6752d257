package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
	"github.com/TamerMomtaz/agentee-backend/pkg/logger"
)

type stubGuard struct {
	resp dto.GuardCheckResponse
	err  error
}

func (s *stubGuard) Check(ctx context.Context) (dto.GuardCheckResponse, error) {
	return s.resp, s.err
}

type stubDigest struct {
	digest string
	err    error
}

func (s *stubDigest) GenerateDailyDigest(ctx context.Context) (string, error) {
	return s.digest, s.err
}

type stubNotifier struct {
	sent []dto.PushSendRequest
	err  error
}

func (s *stubNotifier) NotifyAll(ctx context.Context, req dto.PushSendRequest) (int, error) {
	s.sent = append(s.sent, req)
	return 1, s.err
}

func testLog() *slog.Logger {
	return slog.New(logger.NewTestHandler(slog.LevelInfo))
}

func TestGuardJobAlertsOnUnhealthyServices(t *testing.T) {
	guard := &stubGuard{resp: dto.GuardCheckResponse{
		Results: []models.GuardResult{
			{Service: "frontend", Status: models.GuardHealthy},
			{Service: "api", Status: models.GuardDown},
		},
		Healthy: 1,
		Total:   2,
	}}
	push := &stubNotifier{}
	s := New(testLog(), guard, &stubDigest{}, push)

	s.runGuardCheck()

	if len(push.sent) != 1 {
		t.Fatalf("expected one alert, got %d", len(push.sent))
	}
	if push.sent[0].Body != "api is down" || push.sent[0].Tag != "guard-api" {
		t.Fatalf("unexpected alert: %+v", push.sent[0])
	}
}

func TestGuardJobQuietWhenAllHealthy(t *testing.T) {
	guard := &stubGuard{resp: dto.GuardCheckResponse{
		Results: []models.GuardResult{{Service: "frontend", Status: models.GuardHealthy}},
		Healthy: 1,
		Total:   1,
	}}
	push := &stubNotifier{}
	s := New(testLog(), guard, &stubDigest{}, push)

	s.runGuardCheck()

	if len(push.sent) != 0 {
		t.Fatalf("no alert expected, got %d", len(push.sent))
	}
}

func TestGuardJobSwallowsCheckError(t *testing.T) {
	push := &stubNotifier{}
	s := New(testLog(), &stubGuard{err: errors.New("boom")}, &stubDigest{}, push)

	s.runGuardCheck()

	if len(push.sent) != 0 {
		t.Fatalf("no alert expected on check failure")
	}
}

func TestDigestJobNotifies(t *testing.T) {
	push := &stubNotifier{}
	s := New(testLog(), &stubGuard{}, &stubDigest{digest: "today you discussed deployments"}, push)

	s.runDailyDigest()

	if len(push.sent) != 1 {
		t.Fatalf("expected one digest notification, got %d", len(push.sent))
	}
	if push.sent[0].Title != "Daily digest" {
		t.Fatalf("unexpected notification: %+v", push.sent[0])
	}
}

func TestDigestJobSkipsEmptyDigest(t *testing.T) {
	push := &stubNotifier{}
	s := New(testLog(), &stubGuard{}, &stubDigest{digest: ""}, push)

	s.runDailyDigest()

	if len(push.sent) != 0 {
		t.Fatalf("no notification expected for empty digest")
	}
}
