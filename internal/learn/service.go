package learn

import (
	"context"

	"github.com/google/uuid"
	"github.com/lucasferreira/fluentia/internal/catalog"
	"github.com/lucasferreira/fluentia/internal/config"
	"github.com/lucasferreira/fluentia/internal/content"
	"github.com/lucasferreira/fluentia/internal/generation"
)

type Service interface {
	Create(ctx context.Context, dto CreateFeedDTO) (*FeedView, error)
	Get(ctx context.Context, id uuid.UUID) (*FeedView, error)

	// LoadMore busca mais um lote com os mesmos parâmetros do feed e anexa ao
	// fim. Em caso de falha o feed permanece exatamente como estava.
	LoadMore(ctx context.Context, id uuid.UUID) (*FeedView, error)
}

type service struct {
	provider generation.Provider
	topics   catalog.Service
	store    Store
}

func NewService(provider generation.Provider, topics catalog.Service, store Store) Service {
	return &service{
		provider: provider,
		topics:   topics,
		store:    store,
	}
}

func (s *service) Create(ctx context.Context, dto CreateFeedDTO) (*FeedView, error) {
	log := config.WithContext(ctx)

	req := generation.Request{
		Topic:    s.topics.ResolvePromptContext(ctx, dto.Topic),
		Level:    dto.Level,
		Quantity: dto.Quantity,
		Kind:     dto.Kind,
	}

	items, err := s.fetchItems(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		log.Warnf("Nenhum conteúdo utilizável para o tópico %q", dto.Topic)
		return nil, content.ErrNoUsableItems
	}

	feed := NewFeed(req, items)
	s.store.Put(feed)

	log.Infof("Feed de estudo criado com %d itens", len(items))
	return viewOf(feed), nil
}

func (s *service) Get(_ context.Context, id uuid.UUID) (*FeedView, error) {
	feed, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return viewOf(feed), nil
}

func (s *service) LoadMore(ctx context.Context, id uuid.UUID) (*FeedView, error) {
	log := config.WithContext(ctx)

	feed, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	items, err := s.fetchItems(ctx, feed.Request)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, content.ErrNoUsableItems
	}

	feed.Append(items)
	log.Infof("Feed ampliado para %d itens", len(feed.Items))
	return viewOf(feed), nil
}

func (s *service) fetchItems(ctx context.Context, req generation.Request) ([]content.Item, error) {
	raw, err := s.provider.Generate(ctx, generation.BuildPrompt(req))
	if err != nil {
		return nil, err
	}
	return content.Normalize(raw)
}
