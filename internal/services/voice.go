package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/pkg/logger"
)

type synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type voiceEntry struct {
	clip      dto.VoiceClip
	expiresAt time.Time
}

// voiceService renders text to speech and holds the clips in a TTL'd
// in-memory cache so the frontend can fetch them by id.
type voiceService struct {
	primary  synthesizer
	fallback synthesizer
	ttl      time.Duration
	clockNow func() time.Time
	newID    func() string

	mu          sync.Mutex
	cache       map[string]voiceEntry
	personality string
}

func NewVoiceService(primary, fallback synthesizer, ttl time.Duration) *voiceService {
	return &voiceService{
		primary:     primary,
		fallback:    fallback,
		ttl:         ttl,
		clockNow:    time.Now,
		newID:       uuid.NewString,
		cache:       make(map[string]voiceEntry),
		personality: defaultPersonality,
	}
}

const defaultPersonality = "default"

// SetPersonality switches the active voice personality and returns the
// value that was applied.
func (s *voiceService) SetPersonality(personality string) string {
	if personality == "" {
		personality = defaultPersonality
	}
	s.mu.Lock()
	s.personality = personality
	s.mu.Unlock()
	return personality
}

func (s *voiceService) Personality() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.personality
}

func (s *voiceService) Generate(ctx context.Context, req dto.VoiceGenerateRequest) (dto.VoiceGenerateResponse, error) {
	if req.Text == "" {
		return dto.VoiceGenerateResponse{}, errs.NewValidationError("text is required")
	}
	personality := req.Personality
	if personality == "" {
		personality = s.Personality()
	}

	voiceID, err := s.CacheResponse(ctx, req.Text)
	if err != nil {
		return dto.VoiceGenerateResponse{}, err
	}

	return dto.VoiceGenerateResponse{
		VoiceID:     voiceID,
		URL:         "/api/v1/voice/" + voiceID,
		Personality: personality,
	}, nil
}

// CacheResponse synthesizes text and returns the cache id for the clip.
func (s *voiceService) CacheResponse(ctx context.Context, text string) (string, error) {
	audio, err := s.synthesize(ctx, text)
	if err != nil {
		return "", err
	}

	voiceID := s.newID()
	now := s.clockNow()

	s.mu.Lock()
	// Every think pre-caches a clip and most are never fetched, so sweep
	// the dead ones here instead of waiting for a Get that may never come.
	for id, entry := range s.cache {
		if now.After(entry.expiresAt) {
			delete(s.cache, id)
		}
	}
	s.cache[voiceID] = voiceEntry{
		clip:      dto.VoiceClip{Audio: audio, MimeType: "audio/mpeg"},
		expiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return voiceID, nil
}

// Get returns a cached clip, expiring it lazily.
func (s *voiceService) Get(ctx context.Context, voiceID string) (dto.VoiceClip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[voiceID]
	if !ok {
		return dto.VoiceClip{}, errs.NewNotFoundError("voice response not found or expired")
	}
	if s.clockNow().After(entry.expiresAt) {
		delete(s.cache, voiceID)
		return dto.VoiceClip{}, errs.NewNotFoundError("voice response not found or expired")
	}
	return entry.clip, nil
}

// synthesize tries the cloned-voice tier first, then the OpenAI tier.
func (s *voiceService) synthesize(ctx context.Context, text string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var primaryErr error
	if s.primary != nil {
		audio, err := s.primary.Synthesize(ctx, text)
		if err == nil {
			return audio, nil
		}
		primaryErr = err
		log.Warn("primary tts failed, falling back", "error", err)
	}

	if s.fallback != nil {
		audio, err := s.fallback.Synthesize(ctx, text)
		if err == nil {
			return audio, nil
		}
		return nil, errs.NewExternalServiceError("tts", "all tts tiers failed", true, err)
	}

	return nil, errs.NewExternalServiceError("tts", "no tts tier configured", false, primaryErr)
}
