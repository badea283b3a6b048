package learn

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/feeds", h.Create)
	r.Get("/feeds/{id}", h.Get)
	r.Post("/feeds/{id}/more", h.LoadMore)

	return r
}
