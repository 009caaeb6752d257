package services

import (
	"context"
	"time"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/mind"
	"github.com/TamerMomtaz/agentee-backend/pkg/logger"
)

const defaultContextWindow = 5

type ensembleClient interface {
	Think(ctx context.Context, query, memoryContext string) (mind.Answer, error)
}

type contextBuilder interface {
	BuildContextPrompt(ctx context.Context, maxConversations int) (string, error)
	RecordConversation(ctx context.Context, query string, answer mind.Answer) error
}

type voiceCacher interface {
	CacheResponse(ctx context.Context, text string) (string, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, req dto.TranscriptionRequest) (string, error)
}

type thinkService struct {
	mind        ensembleClient
	memory      contextBuilder
	voice       voiceCacher
	transcriber transcriber
	clockNow    func() time.Time
}

func NewThinkService(ensemble ensembleClient, memory contextBuilder, voice voiceCacher, transcriber transcriber) *thinkService {
	return &thinkService{
		mind:        ensemble,
		memory:      memory,
		voice:       voice,
		transcriber: transcriber,
		clockNow:    time.Now,
	}
}

func (s *thinkService) Think(ctx context.Context, req dto.ThinkRequest) (dto.ThinkResponse, error) {
	log := logger.FromContext(ctx)

	window := req.ContextWindow
	if window <= 0 {
		window = defaultContextWindow
	}

	// Context build and persistence failures never block an answer.
	memoryContext := ""
	if s.memory != nil {
		built, err := s.memory.BuildContextPrompt(ctx, window)
		if err != nil {
			log.Warn("context build failed", "error", err)
		} else {
			memoryContext = built
		}
	}

	answer, err := s.mind.Think(ctx, req.Query, memoryContext)
	if err != nil {
		return dto.ThinkResponse{}, err
	}

	if s.memory != nil {
		if err := s.memory.RecordConversation(ctx, req.Query, answer); err != nil {
			log.Warn("conversation store failed", "error", err)
		}
	}

	voiceID := ""
	if s.voice != nil {
		id, err := s.voice.CacheResponse(ctx, answer.Text)
		if err != nil {
			log.Warn("voice pre-cache failed", "error", err)
		} else {
			voiceID = id
		}
	}

	return dto.ThinkResponse{
		Response:  answer.Text,
		Engine:    answer.Engine,
		Category:  answer.Category,
		Cost:      estimateCost(answer.Engine),
		VoiceID:   voiceID,
		Timestamp: answer.Timestamp,
	}, nil
}

// ThinkAudio transcribes the audio payload, then runs the normal think flow
// on the transcript.
func (s *thinkService) ThinkAudio(ctx context.Context, audio dto.TranscriptionRequest, contextWindow int) (dto.ThinkResponse, error) {
	if s.transcriber == nil {
		return dto.ThinkResponse{}, errs.NewExternalServiceError("whisper", "transcription is not configured", false, nil)
	}

	transcript, err := s.transcriber.Transcribe(ctx, audio)
	if err != nil {
		return dto.ThinkResponse{}, errs.NewExternalServiceError("whisper", "transcription failed", true, err)
	}
	logger.FromContext(ctx).Info("audio transcribed", "chars", len(transcript))

	resp, err := s.Think(ctx, dto.ThinkRequest{
		Query:         transcript,
		ContextWindow: contextWindow,
	})
	if err != nil {
		return dto.ThinkResponse{}, err
	}

	resp.Transcript = transcript
	return resp, nil
}

// Rough per-query cost estimate, used for engine attribution on responses.
func estimateCost(engine dto.Engine) float64 {
	switch engine {
	case dto.EngineClaude:
		return 0.015
	case dto.EngineGemini:
		return 0.001
	case dto.EngineOpenAI:
		return 0.020
	default:
		return 0
	}
}
