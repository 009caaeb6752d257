package openaiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
)

const maxTokens = 2048

// whisperPrompt biases transcription toward ecosystem vocabulary that
// Whisper otherwise mangles.
const whisperPrompt = "A-GENTEE, DEVONEERS, RootRise, Pantheon, KAHOTIA, Drucker, Graham, " +
	"Porter, Deming, Crema, MSWD, Tamer, Momtaz, كاهوتيا, الموجة"

type Adapter struct {
	client openai.Client
	model  string
	log    *slog.Logger
}

func NewAdapter(log *slog.Logger, apiKey, model string) *Adapter {
	return &Adapter{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		log:    log,
	}
}

func (a *Adapter) Answer(ctx context.Context, req dto.GenerateRequest) (dto.GenerateResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Query))

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(a.model),
		Messages:  messages,
		MaxTokens: openai.Int(maxTokens),
	})
	if err != nil {
		return dto.GenerateResponse{}, err
	}
	if len(resp.Choices) == 0 {
		return dto.GenerateResponse{}, fmt.Errorf("openai returned no choices")
	}

	return dto.GenerateResponse{Text: resp.Choices[0].Message.Content}, nil
}

// Transcribe runs Whisper on an uploaded audio payload.
func (a *Adapter) Transcribe(ctx context.Context, req dto.TranscriptionRequest) (string, error) {
	params := openai.AudioTranscriptionNewParams{
		Model:  openai.AudioModelWhisper1,
		File:   openai.File(bytes.NewReader(req.Audio), req.Filename, "application/octet-stream"),
		Prompt: openai.String(whisperPrompt),
	}
	if req.Language != "" && req.Language != "auto" {
		params.Language = openai.String(req.Language)
	}

	resp, err := a.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Synthesize renders text to mp3 speech; used as the voice fallback tier.
func (a *Adapter) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := a.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model: openai.SpeechModelTTS1,
		Voice: openai.AudioSpeechNewParamsVoiceAlloy,
		Input: text,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	a.log.Debug("openai tts generated", "bytes", len(audio))
	return audio, nil
}
