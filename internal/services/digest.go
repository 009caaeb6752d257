package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TamerMomtaz/agentee-backend/pkg/logger"
)

// digestService summarizes the last day of conversations into a short
// morning briefing.
type digestService struct {
	conversations conversationStore
	mind          ensembleClient
	clockNow      func() time.Time
}

func NewDigestService(conversations conversationStore, ensemble ensembleClient) *digestService {
	return &digestService{
		conversations: conversations,
		mind:          ensemble,
		clockNow:      time.Now,
	}
}

// GenerateDailyDigest returns an empty string when there was nothing to
// summarize.
func (s *digestService) GenerateDailyDigest(ctx context.Context) (string, error) {
	since := s.clockNow().Add(-24 * time.Hour)
	conversations, err := s.conversations.ListSince(ctx, since)
	if err != nil {
		return "", err
	}
	if len(conversations) == 0 {
		logger.FromContext(ctx).Info("daily digest: no conversations to summarize")
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Summarize the following %d exchanges from the last day into a short digest. ", len(conversations))
	b.WriteString("Group by theme, surface open questions and actionable follow-ups, keep it under 150 words.\n\n")
	for _, conv := range conversations {
		fmt.Fprintf(&b, "- [%s] Tee: %s\n", conv.Category, truncate(conv.Query, contextQueryChars))
	}

	answer, err := s.mind.Think(ctx, b.String(), "")
	if err != nil {
		return "", err
	}
	return answer.Text, nil
}
