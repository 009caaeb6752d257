package mind

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/pkg/logger"
)

const Version = "6.0-go"

// AnswerProvider is the single capability every engine adapter exposes.
type AnswerProvider interface {
	Answer(ctx context.Context, req dto.GenerateRequest) (dto.GenerateResponse, error)
}

// Answer is a normalized ensemble response, tagged with the engine that
// actually produced it.
type Answer struct {
	Text      string
	Engine    dto.Engine
	Category  dto.Category
	Timestamp time.Time
}

// Mind is the ensemble brain: it classifies a query, calls the chosen
// engine under a bounded per-attempt timeout, and retries once against the
// fallback engine before giving up. Attempts are sequential, never raced.
type Mind struct {
	engines        map[dto.Engine]AnswerProvider
	attemptTimeout time.Duration
	clockNow       func() time.Time

	mu             sync.Mutex
	sessionQueries map[dto.Engine]int
}

func New(engines map[dto.Engine]AnswerProvider, attemptTimeout time.Duration) *Mind {
	return &Mind{
		engines:        engines,
		attemptTimeout: attemptTimeout,
		clockNow:       time.Now,
		sessionQueries: make(map[dto.Engine]int),
	}
}

var errNotConfigured = errors.New("engine not configured")

// Think routes the query and produces exactly one Answer or one error.
func (m *Mind) Think(ctx context.Context, query, memoryContext string) (Answer, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return Answer{}, errs.NewValidationError("query is required")
	}

	decision := Route(query)
	enriched := enrich(query, memoryContext)

	text, primaryErr := m.attempt(ctx, decision.Engine, enriched)
	if primaryErr == nil {
		m.recordQuery(decision.Engine)
		log.Info("think completed",
			"engine", decision.Engine,
			"category", decision.Category)
		return m.answer(text, decision.Engine, decision.Category), nil
	}

	log.Warn("engine failed, trying fallback",
		"engine", decision.Engine,
		"fallback", decision.Fallback,
		"error", primaryErr)

	text, fallbackErr := m.attempt(ctx, decision.Fallback, enriched)
	if fallbackErr == nil {
		m.recordQuery(decision.Fallback)
		log.Info("think completed on fallback",
			"engine", decision.Fallback,
			"category", decision.Category)
		return m.answer(text, decision.Fallback, decision.Category), nil
	}

	return Answer{}, errs.NewEnsembleUnavailableError(primaryErr, fallbackErr)
}

func (m *Mind) attempt(ctx context.Context, engine dto.Engine, query string) (string, error) {
	adapter, ok := m.engines[engine]
	if !ok {
		return "", errs.NewEngineError(string(engine), errNotConfigured)
	}

	attemptCtx := ctx
	if m.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, m.attemptTimeout)
		defer cancel()
	}

	resp, err := adapter.Answer(attemptCtx, dto.GenerateRequest{
		System: systemPromptFor(engine),
		Query:  query,
	})
	if err != nil {
		return "", errs.NewEngineError(string(engine), err)
	}
	return resp.Text, nil
}

func (m *Mind) answer(text string, engine dto.Engine, category dto.Category) Answer {
	return Answer{
		Text:      text,
		Engine:    engine,
		Category:  category,
		Timestamp: m.clockNow(),
	}
}

func systemPromptFor(engine dto.Engine) string {
	switch engine {
	case dto.EngineClaude:
		return claudeSystemPrompt
	case dto.EngineOpenAI:
		return openaiSystemPrompt
	default:
		return geminiSystemPrompt
	}
}

// enrich prepends remembered context to the query text the way the memory
// layer expects engines to receive it.
func enrich(query, memoryContext string) string {
	if memoryContext == "" {
		return query
	}
	return "[CONTEXT FROM MEMORY]\n" + memoryContext + "\n[END CONTEXT]\n\n" +
		"User query: " + query
}

func (m *Mind) recordQuery(engine dto.Engine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionQueries[engine]++
}

// EnginesOnline reports how many adapters are configured.
func (m *Mind) EnginesOnline() int {
	return len(m.engines)
}

// EngineStatus reports per-engine readiness for the health endpoint.
func (m *Mind) EngineStatus() map[dto.Engine]string {
	out := make(map[dto.Engine]string, 3)
	for _, engine := range []dto.Engine{dto.EngineClaude, dto.EngineGemini, dto.EngineOpenAI} {
		if _, ok := m.engines[engine]; ok {
			out[engine] = "ready"
		} else {
			out[engine] = "down"
		}
	}
	return out
}

// Stats returns the per-engine session counters.
func (m *Mind) Stats() dto.MindStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	byEngine := make(map[dto.Engine]int, len(m.sessionQueries))
	total := 0
	for engine, count := range m.sessionQueries {
		byEngine[engine] = count
		total += count
	}

	return dto.MindStats{
		Version:         Version,
		EnginesOnline:   len(m.engines),
		QueriesByEngine: byEngine,
		TotalQueries:    total,
	}
}
