package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/TamerMomtaz/agentee-backend/internal/mind"
	"github.com/TamerMomtaz/agentee-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	Mind            *mind.Mind
	ThinkSvc        ThinkService
	VoiceSvc        VoiceService
	MemorySvc       MemoryService
	GuardSvc        GuardService
	PushSvc         PushService
}
