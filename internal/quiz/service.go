package quiz

import (
	"context"

	"github.com/google/uuid"
	"github.com/lucasferreira/fluentia/internal/catalog"
	"github.com/lucasferreira/fluentia/internal/config"
	"github.com/lucasferreira/fluentia/internal/content"
	"github.com/lucasferreira/fluentia/internal/generation"
)

type Service interface {
	Start(ctx context.Context, dto StartSessionDTO) (*SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Select(ctx context.Context, id uuid.UUID, choice int) (*SessionView, error)
	Check(ctx context.Context, id uuid.UUID) (*Feedback, error)
	Advance(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Restart(ctx context.Context, id uuid.UUID, refresh bool) (*SessionView, error)
	Abandon(ctx context.Context, id uuid.UUID) error
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

func (s *service) Start(ctx context.Context, dto StartSessionDTO) (*SessionView, error) {
	log := config.WithContext(ctx)

	req := generation.Request{
		Topic:    s.topics.ResolvePromptContext(ctx, dto.Topic),
		Level:    dto.Level,
		Quantity: dto.Quantity,
		Kind:     generation.KindQuiz,
	}

	items, err := s.fetchItems(ctx, req)
	if err != nil {
		return nil, err
	}

	session, err := NewSession(gradableOnly(items))
	if err != nil {
		log.Warnf("Nenhuma pergunta utilizável para o tópico %q", dto.Topic)
		return nil, err
	}
	session.Request = req
	s.store.Put(session)

	log.Infof("Sessão de quiz criada com %d perguntas", len(session.Items))
	return viewOf(session), nil
}

func (s *service) Get(_ context.Context, id uuid.UUID) (*SessionView, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

func (s *service) Select(_ context.Context, id uuid.UUID, choice int) (*SessionView, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.Select(choice); err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

func (s *service) Check(ctx context.Context, id uuid.UUID) (*Feedback, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	fb, err := session.Check()
	if err != nil {
		return nil, err
	}
	config.WithContext(ctx).Debugf("Resposta avaliada: correta=%v pontuação=%d", fb.Correct, fb.Score)
	return &fb, nil
}

func (s *service) Advance(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	summary, err := session.Advance()
	if err != nil {
		return nil, err
	}
	if summary != nil {
		config.WithContext(ctx).Infof("Sessão concluída: %d/%d", summary.Score, summary.Total)
	}
	return viewOf(session), nil
}

func (s *service) Restart(ctx context.Context, id uuid.UUID, refresh bool) (*SessionView, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	var items []content.Item
	if refresh {
		fetched, err := s.fetchItems(ctx, session.Request)
		if err != nil {
			return nil, err
		}
		items = gradableOnly(fetched)
		if len(items) == 0 {
			return nil, content.ErrNoUsableItems
		}
	}

	if err := session.Restart(items); err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

func (s *service) Abandon(_ context.Context, id uuid.UUID) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	s.store.Delete(id)
	return nil
}

func (s *service) fetchItems(ctx context.Context, req generation.Request) ([]content.Item, error) {
	raw, err := s.provider.Generate(ctx, generation.BuildPrompt(req))
	if err != nil {
		return nil, err
	}
	return content.Normalize(raw)
}

// gradableOnly filtra os itens aptos a pontuar: o quiz exige alternativas com
// exatamente uma correta; flashcards e itens degradados ficam de fora.
func gradableOnly(items []content.Item) []content.Item {
	out := make([]content.Item, 0, len(items))
	for _, item := range items {
		if item.Gradable() {
			out = append(out, item)
		}
	}
	return out
}
