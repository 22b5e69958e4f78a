package api

import (
	"net/http"

	"github.com/dom/gameshelf/internal/api/handlers"
	"github.com/dom/gameshelf/internal/api/middleware"
	"github.com/dom/gameshelf/internal/config"
	"github.com/dom/gameshelf/internal/service"
	"github.com/dom/gameshelf/internal/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxFormBytes = 64 << 10

func NewRouter(services *service.Services, view *handlers.View, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.Metrics)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestSize(maxFormBytes))

	r.NotFound(view.NotFound)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, view, logger.Named("auth"))
	homeHandler := handlers.NewHomeHandler(view)
	profileHandler := handlers.NewProfileHandler(services.Game, view, cfg.EnableGames)
	gameHandler := handlers.NewGameHandler(services.Game, view)

	// Public pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalUser(services.Auth, logger))
		r.Get("/", homeHandler.Index)
	})

	r.Get("/register", authHandler.RegisterPage)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)

	// Protected pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth, logger))

		r.Get("/profile", profileHandler.Show)

		if cfg.EnableGames {
			r.Get("/add-game", gameHandler.AddPage)
			r.Post("/add-game", gameHandler.Add)
		}
	})

	return r
}
