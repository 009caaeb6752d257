package claudeclient

import (
	"context"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
)

const maxTokens = 2048

type Adapter struct {
	client anthropic.Client
	model  string
	log    *slog.Logger
}

func NewAdapter(log *slog.Logger, apiKey, model string) *Adapter {
	return &Adapter{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		log:    log,
	}
}

func (a *Adapter) Answer(ctx context.Context, req dto.GenerateRequest) (dto.GenerateResponse, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Query)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return dto.GenerateResponse{}, err
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return dto.GenerateResponse{Text: text}, nil
}
