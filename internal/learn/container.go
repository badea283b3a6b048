package learn

import (
	"github.com/lucasferreira/fluentia/internal/catalog"
	"github.com/lucasferreira/fluentia/internal/generation"
)

type LearnContainer struct {
	Handler *Handler
	Service Service
}

func NewLearnContainer(provider generation.Provider, topics catalog.Service) *LearnContainer {
	store := NewInMemoryStore()
	service := NewService(provider, topics, store)
	handler := NewHandler(service)

	return &LearnContainer{
		Handler: handler,
		Service: service,
	}
}
