package bootstrap

import (
	"context"
	"log/slog"

	claudeclient "github.com/TamerMomtaz/agentee-backend/internal/client/claude"
	geminiclient "github.com/TamerMomtaz/agentee-backend/internal/client/gemini"
	openaiclient "github.com/TamerMomtaz/agentee-backend/internal/client/openai"
	"github.com/TamerMomtaz/agentee-backend/internal/config"
	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/mind"
)

// InitEngines builds the ensemble from whatever credentials are present.
// A missing key means that engine stays offline; the router falls back
// around it at request time.
func InitEngines(ctx context.Context, log *slog.Logger, cfg *config.Config) (map[dto.Engine]mind.AnswerProvider, error) {
	engines := make(map[dto.Engine]mind.AnswerProvider)

	if cfg.AnthropicAPIKey != "" {
		engines[dto.EngineClaude] = claudeclient.NewAdapter(log, cfg.AnthropicAPIKey, cfg.ClaudeModel)
	}

	if cfg.ProjectID != "" && cfg.Region != "" {
		gemini, err := geminiclient.NewAdapter(ctx, log, cfg.ProjectID, cfg.Region, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		engines[dto.EngineGemini] = gemini
	}

	if cfg.OpenAIAPIKey != "" {
		engines[dto.EngineOpenAI] = openaiclient.NewAdapter(log, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	log.Info("engines initialized", "online", len(engines))
	return engines, nil
}
