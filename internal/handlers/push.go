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

type PushService interface {
	PublicKey() (dto.VAPIDKeyResponse, error)
	Subscribe(ctx context.Context, req dto.PushSubscribeRequest) error
	NotifyAll(ctx context.Context, req dto.PushSendRequest) (int, error)
}

type pushHandlers struct {
	ResponseHandler response.ResponseHandler
	PushSvc         PushService
}

func NewPushHandlers(deps *Deps) *pushHandlers {
	return &pushHandlers{
		ResponseHandler: deps.ResponseHandler,
		PushSvc:         deps.PushSvc,
	}
}

func (h *pushHandlers) PushRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/vapid", h.PublicKey)
	r.Post("/subscribe", h.Subscribe)
	r.Post("/send", h.Send)
	return r
}

func (h *pushHandlers) PublicKey(w http.ResponseWriter, r *http.Request) {
	resp, err := h.PushSvc.PublicKey()
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *pushHandlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body dto.PushSubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	if err := h.PushSvc.Subscribe(r.Context(), body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, map[string]bool{"subscribed": true})
}

func (h *pushHandlers) Send(w http.ResponseWriter, r *http.Request) {
	var body dto.PushSendRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if body.Body == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("body is required"))
		return
	}
	if body.Title == "" {
		body.Title = "A-GENTEE"
	}

	sent, err := h.PushSvc.NotifyAll(r.Context(), body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PushSendResponse{
		Sent:  sent,
		Title: body.Title,
	})
}
