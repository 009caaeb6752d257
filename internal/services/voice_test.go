package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/pkg/helpers"
)

type stubSynthesizer struct {
	calls int
	text  string
	audio []byte
	err   error
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.calls++
	s.text = text
	return s.audio, s.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestVoiceGenerateCachesClip(t *testing.T) {
	primary := &stubSynthesizer{audio: []byte("cloned-voice")}
	svc := NewVoiceService(primary, nil, time.Hour)
	svc.newID = func() string { return "clip-1" }

	resp, err := svc.Generate(helpers.TestCtx(), dto.VoiceGenerateRequest{Text: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.VoiceID != "clip-1" || resp.URL != "/api/v1/voice/clip-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Personality != "default" {
		t.Fatalf("expected default personality, got %q", resp.Personality)
	}

	clip, err := svc.Get(helpers.TestCtx(), "clip-1")
	if err != nil {
		t.Fatalf("cached clip not retrievable: %v", err)
	}
	if string(clip.Audio) != "cloned-voice" || clip.MimeType != "audio/mpeg" {
		t.Fatalf("unexpected clip: %+v", clip)
	}
}

func TestVoiceGenerateRequiresText(t *testing.T) {
	svc := NewVoiceService(&stubSynthesizer{}, nil, time.Hour)

	_, err := svc.Generate(helpers.TestCtx(), dto.VoiceGenerateRequest{})

	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestVoiceFallsBackWhenPrimaryFails(t *testing.T) {
	primary := &stubSynthesizer{err: errors.New("elevenlabs 429")}
	fallback := &stubSynthesizer{audio: []byte("openai-voice")}
	svc := NewVoiceService(primary, fallback, time.Hour)

	id, err := svc.CacheResponse(helpers.TestCtx(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("expected one call per tier, got %d/%d", primary.calls, fallback.calls)
	}

	clip, err := svc.Get(helpers.TestCtx(), id)
	if err != nil {
		t.Fatalf("clip not cached: %v", err)
	}
	if string(clip.Audio) != "openai-voice" {
		t.Fatalf("expected fallback audio, got %q", clip.Audio)
	}
}

func TestVoiceAllTiersFail(t *testing.T) {
	primary := &stubSynthesizer{err: errors.New("down")}
	fallback := &stubSynthesizer{err: errors.New("also down")}
	svc := NewVoiceService(primary, fallback, time.Hour)

	_, err := svc.CacheResponse(helpers.TestCtx(), "hello")

	var svcErr *errs.ExternalServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ExternalServiceError, got %T", err)
	}
	if !svcErr.Transient {
		t.Fatalf("tier outage should be transient")
	}
}

func TestVoiceNoTierConfigured(t *testing.T) {
	svc := NewVoiceService(nil, nil, time.Hour)

	_, err := svc.CacheResponse(helpers.TestCtx(), "hello")

	var svcErr *errs.ExternalServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ExternalServiceError, got %T", err)
	}
	if svcErr.Transient {
		t.Fatalf("missing config is not transient")
	}
}

func TestVoiceClipExpires(t *testing.T) {
	primary := &stubSynthesizer{audio: []byte("x")}
	svc := NewVoiceService(primary, nil, time.Hour)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.clockNow = fixedClock(start)

	id, err := svc.CacheResponse(helpers.TestCtx(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.clockNow = fixedClock(start.Add(61 * time.Minute))

	_, err = svc.Get(helpers.TestCtx(), id)
	var nfErr *errs.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError after expiry, got %T", err)
	}
}

func TestVoiceCacheSweepsExpiredOnInsert(t *testing.T) {
	primary := &stubSynthesizer{audio: []byte("x")}
	svc := NewVoiceService(primary, nil, time.Hour)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.clockNow = fixedClock(start)

	stale, err := svc.CacheResponse(helpers.TestCtx(), "first")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The stale clip is never fetched; the next insert must still drop it.
	svc.clockNow = fixedClock(start.Add(61 * time.Minute))

	fresh, err := svc.CacheResponse(helpers.TestCtx(), "second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.mu.Lock()
	_, staleKept := svc.cache[stale]
	_, freshKept := svc.cache[fresh]
	svc.mu.Unlock()

	if staleKept {
		t.Fatalf("expired clip %q still cached after insert", stale)
	}
	if !freshKept {
		t.Fatalf("fresh clip %q missing from cache", fresh)
	}
}

func TestVoiceSetPersonalityFlowsIntoGenerate(t *testing.T) {
	primary := &stubSynthesizer{audio: []byte("x")}
	svc := NewVoiceService(primary, nil, time.Hour)

	if got := svc.SetPersonality("storyteller"); got != "storyteller" {
		t.Fatalf("expected storyteller applied, got %q", got)
	}

	resp, err := svc.Generate(helpers.TestCtx(), dto.VoiceGenerateRequest{Text: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Personality != "storyteller" {
		t.Fatalf("expected stored personality, got %q", resp.Personality)
	}

	if got := svc.SetPersonality(""); got != "default" {
		t.Fatalf("expected empty personality to reset to default, got %q", got)
	}
}

func TestVoiceUnknownClip(t *testing.T) {
	svc := NewVoiceService(&stubSynthesizer{}, nil, time.Hour)

	_, err := svc.Get(helpers.TestCtx(), "nope")

	var nfErr *errs.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
}
