package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lucasferreira/fluentia/internal/auth"
	"github.com/lucasferreira/fluentia/internal/catalog"
	"github.com/lucasferreira/fluentia/internal/config"
	"github.com/lucasferreira/fluentia/internal/learn"
	"github.com/lucasferreira/fluentia/internal/middlewares"
	"github.com/lucasferreira/fluentia/internal/quiz"
)

type RouterConfig struct {
	AuthHandler    *auth.Handler
	CatalogHandler *catalog.Handler
	QuizHandler    *quiz.Handler
	LearnHandler   *learn.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/guest", cfg.AuthHandler.Guest)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Mount("/catalog", catalog.Routes(cfg.CatalogHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/learn", learn.Routes(cfg.LearnHandler))
	})

	return r
}
