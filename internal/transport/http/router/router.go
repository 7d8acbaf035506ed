package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/config"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/handlers"
	appmw "github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/middleware"
)

func New(
	users *handlers.UsersHandler,
	auth *handlers.AuthHandler,
	behavior *handlers.BehaviorHandler,
	recs *handlers.RecommendationsHandler,
	health *handlers.HealthHandler,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(appmw.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(appmw.AccessLog)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/health", health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/{id}", users.GetByID)
			r.Post("/", users.Upsert)
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", auth.Login)
			r.Post("/register", auth.Register)
		})
		r.Route("/behavior", func(r chi.Router) {
			r.Post("/{user_id}", behavior.Append)
			r.Get("/{user_id}", behavior.List)
		})
		r.Get("/recommendations/{user_id}", recs.Summarize)
	})

	return r
}
