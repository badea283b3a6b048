package quiz

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

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto StartSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para iniciar quiz")
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

	view, err := h.service.Start(r.Context(), dto)
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, view)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := sessionID(w, r)
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

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var dto SelectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Select(r.Context(), id, dto.Choice)
	if err != nil {
		writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	feedback, err := h.service.Check(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, feedback)
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.service.Advance(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var dto RestartDTO
	if r.Body != nil {
		// corpo opcional: sem ele, reinicia com as mesmas perguntas
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	view, err := h.service.Restart(r.Context(), id, dto.Refresh)
	if err != nil {
		writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := h.service.Abandon(r.Context(), id); err != nil {
		writeError(w, log, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "session discarded"})
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
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
		http.Error(w, "no usable questions for this topic, try another one", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidChoice):
		http.Error(w, "choice index out of range", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, "operation not allowed in current session state", http.StatusConflict)
	default:
		log.WithError(err).Error("Erro inesperado na sessão de quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
