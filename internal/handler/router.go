package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/simranbali-ace04/CampusHubX/internal/config"
	"github.com/simranbali-ace04/CampusHubX/internal/handler/middleware"
	"github.com/simranbali-ace04/CampusHubX/shared/auth"
)

// NewRouter assembles the HTTP surface: operational endpoints at the root and
// the authenticated API under /api.
func NewRouter(
	cfg *config.Config,
	logger *zerolog.Logger,
	jwtAuth auth.JWTAuthenticator,
	collegeHandler *CollegeHandler,
	applicationHandler *ApplicationHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtAuth, cfg.Token.AccessTokenSecret))

		collegeHandler.Register(r)
		applicationHandler.Register(r)
	})

	return r
}
