package catalog

import (
	"context"
	"fmt"

	"github.com/lucasferreira/fluentia/internal/config"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context, kind TopicKind) ([]*Topic, error)

	// ResolvePromptContext traduz um slug do catálogo no texto de prompt do
	// tópico. Entradas fora do catálogo voltam como vieram: o aluno também
	// pode digitar um tema livre.
	ResolvePromptContext(ctx context.Context, topic string) string
}

type service struct {
	repo TopicRepository
}

func NewService(repo TopicRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, kind TopicKind) ([]*Topic, error) {
	log := config.WithContext(ctx)

	topics, err := s.repo.List(kind)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tópicos do catálogo")
		return nil, err
	}
	return topics, nil
}

func (s *service) ResolvePromptContext(ctx context.Context, topic string) string {
	entry, err := s.repo.GetBySlug(topic)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Erro ao resolver tópico no catálogo")
		return topic
	}
	if entry == nil {
		return topic
	}
	return entry.PromptContext
}

// Migrate cria o schema e semeia o catálogo inicial, sem sobrescrever
// entradas já existentes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Topic{}); err != nil {
		return fmt.Errorf("falha ao migrar catálogo: %w", err)
	}

	repo := NewRepository(db)
	for _, topic := range SeedTopics() {
		existing, err := repo.GetBySlug(topic.Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		t := topic
		if err := repo.Create(&t); err != nil {
			return fmt.Errorf("falha ao semear tópico %q: %w", topic.Slug, err)
		}
	}
	return nil
}
