package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
)

type guardChecker interface {
	Check(ctx context.Context) (dto.GuardCheckResponse, error)
}

type digestGenerator interface {
	GenerateDailyDigest(ctx context.Context) (string, error)
}

type notifier interface {
	NotifyAll(ctx context.Context, req dto.PushSendRequest) (int, error)
}

type Scheduler struct {
	Log    *slog.Logger
	Guard  guardChecker
	Digest digestGenerator
	Push   notifier

	cron *cron.Cron
}

func New(log *slog.Logger, guard guardChecker, digest digestGenerator, push notifier) *Scheduler {
	return &Scheduler{
		Log:    log,
		Guard:  guard,
		Digest: digest,
		Push:   push,
		cron:   cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start registers the background jobs and launches the cron loop.
// Jobs run on the instance's own clock; Cloud Run min-instances=1 keeps
// one instance alive for them.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("*/15 * * * *", s.runGuardCheck); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 6 * * *", s.runDailyDigest); err != nil {
		return err
	}

	s.cron.Start()
	s.Log.Info("scheduler started", "jobs", 2)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runGuardCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resp, err := s.Guard.Check(ctx)
	if err != nil {
		s.Log.Error("scheduled guard check failed", "error", err)
		return
	}

	if resp.Healthy == resp.Total || resp.Total == 0 {
		return
	}

	for _, result := range resp.Results {
		if result.Status == models.GuardHealthy {
			continue
		}
		_, err := s.Push.NotifyAll(ctx, dto.PushSendRequest{
			Title: "Guard alert",
			Body:  result.Service + " is " + result.Status,
			Tag:   "guard-" + result.Service,
		})
		if err != nil {
			s.Log.Warn("guard alert not delivered", "service", result.Service, "error", err)
		}
	}
}

func (s *Scheduler) runDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	digest, err := s.Digest.GenerateDailyDigest(ctx)
	if err != nil {
		s.Log.Error("daily digest failed", "error", err)
		return
	}
	if digest == "" {
		s.Log.Info("daily digest skipped, no conversations in window")
		return
	}

	_, err = s.Push.NotifyAll(ctx, dto.PushSendRequest{
		Title: "Daily digest",
		Body:  digest,
		Tag:   "daily-digest",
	})
	if err != nil {
		s.Log.Warn("daily digest not delivered", "error", err)
	}
}
