package quiz

import (
	"github.com/lucasferreira/fluentia/internal/catalog"
	"github.com/lucasferreira/fluentia/internal/generation"
)

type QuizContainer struct {
	Handler *Handler
	Service Service
}

func NewQuizContainer(provider generation.Provider, topics catalog.Service) *QuizContainer {
	store := NewInMemoryStore()
	service := NewService(provider, topics, store)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
