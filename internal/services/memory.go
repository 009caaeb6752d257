package services

import (
	"context"
	"strings"
	"time"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/mind"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
	"github.com/TamerMomtaz/agentee-backend/pkg/logger"
)

const (
	defaultHistoryLimit = 20
	defaultIdeasLimit   = 20
	defaultIdeaCategory = "general"

	// truncation limits for context injection, keeps prompts bounded
	contextQueryChars    = 200
	contextResponseChars = 300
	storedResponseChars  = 5000
)

type conversationStore interface {
	Save(ctx context.Context, conv models.Conversation) (string, error)
	ListRecent(ctx context.Context, limit, offset int) ([]models.Conversation, error)
	ListSince(ctx context.Context, since time.Time) ([]models.Conversation, error)
	Count(ctx context.Context) (int, error)
}

type ideaStore interface {
	Save(ctx context.Context, idea models.Idea) (string, error)
	List(ctx context.Context, category string, limit int) ([]models.Idea, error)
	Count(ctx context.Context) (int, error)
}

type memoryService struct {
	conversations conversationStore
	ideas         ideaStore
	clockNow      func() time.Time
}

func NewMemoryService(conversations conversationStore, ideas ideaStore) *memoryService {
	return &memoryService{
		conversations: conversations,
		ideas:         ideas,
		clockNow:      time.Now,
	}
}

func (s *memoryService) History(ctx context.Context, limit, offset int) (dto.HistoryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	conversations, err := s.conversations.ListRecent(ctx, limit, offset)
	if err != nil {
		return dto.HistoryResponse{}, err
	}
	if conversations == nil {
		conversations = []models.Conversation{}
	}
	return dto.HistoryResponse{
		Conversations: conversations,
		Total:         len(conversations),
	}, nil
}

// RecordConversation persists one exchange after the ensemble answered.
func (s *memoryService) RecordConversation(ctx context.Context, query string, answer mind.Answer) error {
	response := truncate(answer.Text, storedResponseChars)

	_, err := s.conversations.Save(ctx, models.Conversation{
		Query:     query,
		Response:  response,
		Engine:    string(answer.Engine),
		Category:  string(answer.Category),
		SessionID: "web",
		Mode:      "chat",
		CreatedAt: answer.Timestamp,
	})
	return err
}

// BuildContextPrompt renders the recent exchanges, oldest first, for
// injection ahead of the next query.
func (s *memoryService) BuildContextPrompt(ctx context.Context, maxConversations int) (string, error) {
	conversations, err := s.conversations.ListRecent(ctx, maxConversations, 0)
	if err != nil {
		return "", err
	}
	if len(conversations) == 0 {
		return "", nil
	}

	lines := []string{"[Recent conversation history]"}
	for i := len(conversations) - 1; i >= 0; i-- {
		conv := conversations[i]
		lines = append(lines,
			"Tee: "+truncate(conv.Query, contextQueryChars),
			"A-GENTEE: "+truncate(conv.Response, contextResponseChars))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *memoryService) StoreIdea(ctx context.Context, req dto.IdeaRequest) (dto.IdeaResponse, error) {
	if req.Idea == "" {
		return dto.IdeaResponse{}, errs.NewValidationError("idea is required")
	}
	category := req.Category
	if category == "" {
		category = defaultIdeaCategory
	}

	id, err := s.ideas.Save(ctx, models.Idea{
		Idea:      req.Idea,
		Category:  category,
		CreatedAt: s.clockNow(),
	})
	if err != nil {
		return dto.IdeaResponse{}, err
	}

	return dto.IdeaResponse{Stored: true, ID: id, Category: category}, nil
}

func (s *memoryService) Ideas(ctx context.Context, category string, limit int) (dto.IdeasResponse, error) {
	if limit <= 0 {
		limit = defaultIdeasLimit
	}
	ideas, err := s.ideas.List(ctx, category, limit)
	if err != nil {
		return dto.IdeasResponse{}, err
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}
	return dto.IdeasResponse{Ideas: ideas, Total: len(ideas)}, nil
}

// Stats returns collection counts; a failed count is reported as -1
// rather than failing the whole endpoint.
func (s *memoryService) Stats(ctx context.Context) map[string]int {
	log := logger.FromContext(ctx)
	out := make(map[string]int, 2)

	for name, count := range map[string]func(context.Context) (int, error){
		"conversations": s.conversations.Count,
		"ideas":         s.ideas.Count,
	} {
		n, err := count(ctx)
		if err != nil {
			log.Warn("stats count failed", "collection", name, "error", err)
			n = -1
		}
		out[name] = n
	}
	return out
}

// truncate clips by runes so Arabic text is never cut mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
