package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/response"
)

type GuardService interface {
	Check(ctx context.Context) (dto.GuardCheckResponse, error)
	Status(ctx context.Context) (dto.GuardCheckResponse, error)
	History(ctx context.Context, limit int) (dto.GuardHistoryResponse, error)
}

type guardHandlers struct {
	ResponseHandler response.ResponseHandler
	GuardSvc        GuardService
}

func NewGuardHandlers(deps *Deps) *guardHandlers {
	return &guardHandlers{
		ResponseHandler: deps.ResponseHandler,
		GuardSvc:        deps.GuardSvc,
	}
}

func (h *guardHandlers) GuardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/check", h.Check)
	r.Get("/status", h.Status)
	r.Get("/history", h.History)
	return r
}

func (h *guardHandlers) Check(w http.ResponseWriter, r *http.Request) {
	resp, err := h.GuardSvc.Check(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *guardHandlers) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.GuardSvc.Status(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *guardHandlers) History(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)

	resp, err := h.GuardSvc.History(r.Context(), limit)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
