package learn

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lucasferreira/fluentia/internal/config"
	"github.com/lucasferreira/fluentia/internal/content"
	"github.com/lucasferreira/fluentia/internal/generation"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateFeedDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar feed")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Topic == "" {
		http.Error(w, "topic required", http.StatusBadRequest)
		return
	}
	if dto.Level == "" {
		dto.Level = generation.LevelB1
	}
	if !dto.Level.Valid() {
		http.Error(w, "invalid level", http.StatusBadRequest)
		return
	}
	if dto.Kind == "" {
		dto.Kind = generation.KindGrammar
	}
	if !dto.Kind.Valid() || dto.Kind == generation.KindQuiz {
		http.Error(w, "invalid kind", http.StatusBadRequest)
		return
	}

	view, err := h.service.Create(r.Context(), dto)
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, view)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := feedID(w, r)
	if !ok {
		return
	}
	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) LoadMore(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := feedID(w, r)
	if !ok {
		return
	}
	view, err := h.service.LoadMore(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func feedID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid feed id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, log *logrus.Entry, err error) {
	var transport *generation.TransportError
	switch {
	case errors.As(err, &transport):
		log.WithError(err).Error("Falha de transporte no serviço de geração")
		http.Error(w, "generation service unavailable, try again", http.StatusBadGateway)
	case errors.Is(err, content.ErrMalformedPayload):
		log.WithError(err).Error("Conteúdo gerado ilegível")
		http.Error(w, "generated content was unreadable, try again", http.StatusBadGateway)
	case errors.Is(err, content.ErrNoUsableItems):
		http.Error(w, "no usable content for this topic, try another one", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrFeedNotFound):
		http.Error(w, "feed not found", http.StatusNotFound)
	default:
		log.WithError(err).Error("Erro inesperado no feed de estudo")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
