package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/TamerMomtaz/agentee-backend/internal/handlers"
	"github.com/TamerMomtaz/agentee-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, authDisabled bool) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	am := middleware.NewMiddleware(deps.Firebase, authDisabled)

	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	th := handlers.NewThinkHandlers(deps)
	vh := handlers.NewVoiceHandlers(deps)
	mh := handlers.NewMemoryHandlers(deps)
	gh := handlers.NewGuardHandlers(deps)
	ph := handlers.NewPushHandlers(deps)
	hh := handlers.NewHealthHandlers(deps)

	r.Route("/api/v1", func(r chi.Router) {
		// Probes and the service worker hit these without a token.
		r.Get("/health", hh.Health)
		r.Mount("/voice", vh.VoiceRoutes())
		r.Mount("/push", ph.PushRoutes())

		r.Group(func(r chi.Router) {
			r.Use(am.FirebaseAuth)
			r.Post("/mode", vh.SetMode)
			r.Mount("/think", th.ThinkRoutes())
			r.Mount("/", mh.MemoryRoutes())
			r.Mount("/guard", gh.GuardRoutes())
		})
	})

	return r
}
