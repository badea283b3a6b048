package catalog

import (
	"net/http"

	"github.com/lucasferreira/fluentia/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	kind := TopicKind(r.URL.Query().Get("kind"))
	if kind != "" && !kind.Valid() {
		http.Error(w, "invalid kind", http.StatusBadRequest)
		return
	}

	topics, err := h.service.List(r.Context(), kind)
	if err != nil {
		log.WithError(err).Error("Falha ao listar tópicos")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, topics)
}
