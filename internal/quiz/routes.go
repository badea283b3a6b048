package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/sessions", h.Start)
	r.Get("/sessions/{id}", h.Get)
	r.Post("/sessions/{id}/select", h.Select)
	r.Post("/sessions/{id}/check", h.Check)
	r.Post("/sessions/{id}/advance", h.Advance)
	r.Post("/sessions/{id}/restart", h.Restart)
	r.Delete("/sessions/{id}", h.Abandon)

	return r
}
