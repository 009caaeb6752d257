package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/TamerMomtaz/agentee-backend/internal/bootstrap"
	elevenlabsclient "github.com/TamerMomtaz/agentee-backend/internal/client/elevenlabs"
	openaiclient "github.com/TamerMomtaz/agentee-backend/internal/client/openai"
	"github.com/TamerMomtaz/agentee-backend/internal/config"
	"github.com/TamerMomtaz/agentee-backend/internal/crypto"
	"github.com/TamerMomtaz/agentee-backend/internal/handlers"
	"github.com/TamerMomtaz/agentee-backend/internal/mind"
	"github.com/TamerMomtaz/agentee-backend/internal/response"
	"github.com/TamerMomtaz/agentee-backend/internal/router"
	"github.com/TamerMomtaz/agentee-backend/internal/scheduler"
	"github.com/TamerMomtaz/agentee-backend/internal/services"
	"github.com/TamerMomtaz/agentee-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// helpers
	kmsHelper := crypto.NewKMS(bs.KMS, cfg.KMSKeyName)

	// stores
	cstore := store.NewConversationStore(bs.Firestore)
	istore := store.NewIdeaStore(bs.Firestore)
	gstore := store.NewGuardStore(bs.Firestore)
	sstore := store.NewSubscriptionStore(bs.Firestore, kmsHelper)

	// mind
	brain := mind.New(bs.Engines, cfg.ThinkTimeout)

	// voice tiers
	openaiAdapter := openaiclient.NewAdapter(bs.Log, cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// services
	memserv := services.NewMemoryService(cstore, istore)
	voiserv := services.NewVoiceService(nil, openaiAdapter, cfg.VoiceTTL)
	if cfg.ElevenLabsAPIKey != "" {
		eleven := elevenlabsclient.NewAdapter(bs.Log, cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID)
		voiserv = services.NewVoiceService(eleven, openaiAdapter, cfg.VoiceTTL)
	}
	thserv := services.NewThinkService(brain, memserv, voiserv, openaiAdapter)
	guserv := services.NewGuardService(cfg.GuardServices, gstore)
	puserv := services.NewPushService(sstore, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDEmail)
	diserv := services.NewDigestService(cstore, brain)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.Mind = brain
	deps.ThinkSvc = thserv
	deps.VoiceSvc = voiserv
	deps.MemorySvc = memserv
	deps.GuardSvc = guserv
	deps.PushSvc = puserv

	// background jobs
	sched := scheduler.New(bs.Log, guserv, diserv, puserv)
	err = sched.Start()
	exitOnError("scheduler start failed", err, bs.Log)
	defer sched.Stop()

	// router
	r := router.NewRouter(deps, cfg.AuthDisabled)
	err = http.ListenAndServe(":8080", r)
	exitOnError("server start failed", err, bs.Log)
}
