package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/mind"
	"github.com/TamerMomtaz/agentee-backend/internal/response"
)

type MemoryService interface {
	History(ctx context.Context, limit, offset int) (dto.HistoryResponse, error)
	StoreIdea(ctx context.Context, req dto.IdeaRequest) (dto.IdeaResponse, error)
	Ideas(ctx context.Context, category string, limit int) (dto.IdeasResponse, error)
	Stats(ctx context.Context) map[string]int
}

type memoryHandlers struct {
	ResponseHandler response.ResponseHandler
	MemorySvc       MemoryService
	Mind            *mind.Mind
}

func NewMemoryHandlers(deps *Deps) *memoryHandlers {
	return &memoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		MemorySvc:       deps.MemorySvc,
		Mind:            deps.Mind,
	}
}

func (h *memoryHandlers) MemoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/history", h.History)
	r.Get("/ideas", h.Ideas)
	r.Post("/ideas", h.StoreIdea)
	r.Get("/stats", h.Stats)
	return r
}

func (h *memoryHandlers) History(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	resp, err := h.MemorySvc.History(r.Context(), limit, offset)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *memoryHandlers) StoreIdea(w http.ResponseWriter, r *http.Request) {
	var body dto.IdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if body.Idea == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("idea is required"))
		return
	}

	resp, err := h.MemorySvc.StoreIdea(r.Context(), body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, resp)
}

func (h *memoryHandlers) Ideas(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	limit := queryInt(r, "limit", 20)

	resp, err := h.MemorySvc.Ideas(r.Context(), category, limit)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *memoryHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	resp := dto.StatsResponse{
		Mind:   h.Mind.Stats(),
		Memory: h.MemorySvc.Stats(r.Context()),
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
