package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/response"
)

// maxAudioBytes caps uploaded recordings at 25MB, the Whisper API limit.
const maxAudioBytes = 25 << 20

// Formats Whisper accepts. Browser recorders often send octet-stream, so
// that passes through; anything else declared gets rejected up front.
var allowedAudioTypes = map[string]bool{
	"audio/webm":               true,
	"audio/wav":                true,
	"audio/mpeg":               true,
	"audio/mp4":                true,
	"audio/ogg":                true,
	"audio/x-m4a":              true,
	"application/octet-stream": true,
}

type ThinkService interface {
	Think(ctx context.Context, req dto.ThinkRequest) (dto.ThinkResponse, error)
	ThinkAudio(ctx context.Context, audio dto.TranscriptionRequest, contextWindow int) (dto.ThinkResponse, error)
}

type thinkHandlers struct {
	ResponseHandler response.ResponseHandler
	ThinkSvc        ThinkService
}

func NewThinkHandlers(deps *Deps) *thinkHandlers {
	return &thinkHandlers{
		ResponseHandler: deps.ResponseHandler,
		ThinkSvc:        deps.ThinkSvc,
	}
}

func (h *thinkHandlers) ThinkRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Think)
	r.Post("/audio", h.ThinkAudio)
	return r
}

func (h *thinkHandlers) Think(w http.ResponseWriter, r *http.Request) {
	var body dto.ThinkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if body.Query == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("query is required"))
		return
	}

	resp, err := h.ThinkSvc.Think(r.Context(), body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *thinkHandlers) ThinkAudio(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("audio file is required"))
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "" && !allowedAudioTypes[ct] {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("unsupported audio type: "+ct))
		return
	}

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("failed to read audio file"))
		return
	}
	if len(audio) == 0 {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("audio file is empty"))
		return
	}

	language := r.FormValue("language")
	if language == "" {
		language = "auto"
	}

	contextWindow := 0
	if v := r.FormValue("contextWindow"); v != "" {
		contextWindow, _ = strconv.Atoi(v)
	}

	req := dto.TranscriptionRequest{
		Filename: header.Filename,
		Language: language,
		Audio:    audio,
	}

	resp, err := h.ThinkSvc.ThinkAudio(r.Context(), req, contextWindow)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
