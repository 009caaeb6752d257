package handlers

import (
	"fmt"
	"net/http"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/mind"
	"github.com/TamerMomtaz/agentee-backend/internal/response"
)

type healthHandlers struct {
	ResponseHandler response.ResponseHandler
	Mind            *mind.Mind
}

func NewHealthHandlers(deps *Deps) *healthHandlers {
	return &healthHandlers{
		ResponseHandler: deps.ResponseHandler,
		Mind:            deps.Mind,
	}
}

// Health is deliberately cheap: it reports which engines are configured
// without calling any of them, so Cloud Run probes never burn tokens.
func (h *healthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	online := h.Mind.EnginesOnline()

	status := "ok"
	if online == 0 {
		status = "degraded"
	}

	resp := dto.HealthResponse{
		Status: status,
		Components: map[string]dto.ComponentHealth{
			"mind": {
				Status:  status,
				Engines: h.Mind.EngineStatus(),
				Online:  fmt.Sprintf("%d/3", online),
			},
		},
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
