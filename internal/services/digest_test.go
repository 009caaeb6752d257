package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/TamerMomtaz/agentee-backend/internal/mind"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
	"github.com/TamerMomtaz/agentee-backend/pkg/helpers"
)

func TestDailyDigestSummarizesWindow(t *testing.T) {
	cstore := &stubConversationStore{since: []models.Conversation{
		{Query: "plan the week", Category: "complex"},
		{Query: "translate this", Category: "arabic"},
	}}
	ensemble := &stubEnsemble{answer: mind.Answer{Text: "your digest"}}
	svc := NewDigestService(cstore, ensemble)

	now := time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)
	svc.clockNow = fixedClock(now)

	digest, err := svc.GenerateDailyDigest(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if digest != "your digest" {
		t.Fatalf("expected ensemble summary, got %q", digest)
	}
	if got := cstore.sinceAt; !got.Equal(now.Add(-24 * time.Hour)) {
		t.Fatalf("expected 24h window, got %v", got)
	}
	if !strings.Contains(ensemble.query, "plan the week") || !strings.Contains(ensemble.query, "[complex]") {
		t.Fatalf("summarize prompt missing exchanges:\n%s", ensemble.query)
	}
}

func TestDailyDigestEmptyWindow(t *testing.T) {
	svc := NewDigestService(&stubConversationStore{}, &stubEnsemble{})

	digest, err := svc.GenerateDailyDigest(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest != "" {
		t.Fatalf("expected empty digest, got %q", digest)
	}
}

func TestDailyDigestEnsembleFailure(t *testing.T) {
	cstore := &stubConversationStore{since: []models.Conversation{{Query: "q"}}}
	ensemble := &stubEnsemble{err: errors.New("all engines down")}
	svc := NewDigestService(cstore, ensemble)

	if _, err := svc.GenerateDailyDigest(helpers.TestCtx()); err == nil {
		t.Fatalf("expected error when ensemble fails")
	}
}
