package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/response"
)

type VoiceService interface {
	Generate(ctx context.Context, req dto.VoiceGenerateRequest) (dto.VoiceGenerateResponse, error)
	Get(ctx context.Context, voiceID string) (dto.VoiceClip, error)
	SetPersonality(personality string) string
}

type voiceHandlers struct {
	ResponseHandler response.ResponseHandler
	VoiceSvc        VoiceService
}

func NewVoiceHandlers(deps *Deps) *voiceHandlers {
	return &voiceHandlers{
		ResponseHandler: deps.ResponseHandler,
		VoiceSvc:        deps.VoiceSvc,
	}
}

func (h *voiceHandlers) VoiceRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/generate", h.Generate)
	r.Get("/{voiceId}", h.Get)
	return r
}

func (h *voiceHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var body dto.VoiceGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	resp, err := h.VoiceSvc.Generate(r.Context(), body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

// SetMode switches the voice personality and toggles voice playback for the
// caller's session. An empty personality resets to the default.
func (h *voiceHandlers) SetMode(w http.ResponseWriter, r *http.Request) {
	var body dto.ModeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	applied := h.VoiceSvc.SetPersonality(body.VoicePersonality)

	enabled := true
	if body.VoiceEnabled != nil {
		enabled = *body.VoiceEnabled
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.ModeResponse{
		VoicePersonality: applied,
		VoiceEnabled:     enabled,
	})
}

// Get streams a cached clip as raw audio rather than a JSON envelope so the
// browser can point an <audio> element straight at the URL.
func (h *voiceHandlers) Get(w http.ResponseWriter, r *http.Request) {
	voiceID := chi.URLParam(r, "voiceId")
	if voiceID == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("voiceId is required"))
		return
	}

	clip, err := h.VoiceSvc.Get(r.Context(), voiceID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", clip.MimeType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(clip.Audio)
}
