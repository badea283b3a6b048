package container

import (
	"context"
	"log"
	"os"

	"github.com/lucasferreira/fluentia/internal/auth"
	"github.com/lucasferreira/fluentia/internal/catalog"
	"github.com/lucasferreira/fluentia/internal/config"
	"github.com/lucasferreira/fluentia/internal/generation"
	"github.com/lucasferreira/fluentia/internal/learn"
	"github.com/lucasferreira/fluentia/internal/quiz"
)

type Container struct {
	AuthHandler      *auth.Handler
	CatalogContainer *catalog.CatalogContainer
	QuizContainer    *quiz.QuizContainer
	LearnContainer   *learn.LearnContainer
}

func New() *Container {
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, config.EnvOr("DB_DRIVER", "sqlite"), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	catalogContainer, err := catalog.NewCatalogContainer(config.DB)
	if err != nil {
		log.Fatalf("failed to prepare topic catalog: %v", err)
	}

	provider := newProvider(ctx)
	quizContainer := quiz.NewQuizContainer(provider, catalogContainer.Service)
	learnContainer := learn.NewLearnContainer(provider, catalogContainer.Service)

	return &Container{
		AuthHandler:      auth.NewHandler(),
		CatalogContainer: catalogContainer,
		QuizContainer:    quizContainer,
		LearnContainer:   learnContainer,
	}
}

func newProvider(ctx context.Context) generation.Provider {
	switch config.EnvOr("GENERATION_PROVIDER", "flowise") {
	case "gemini":
		provider, err := generation.NewGeminiProvider(ctx)
		if err != nil {
			log.Fatalf("failed to create gemini provider: %v", err)
		}
		return provider
	default:
		endpoint := os.Getenv("FLOWISE_URL")
		if endpoint == "" {
			log.Fatal("FLOWISE_URL is required with the flowise provider")
		}
		return generation.NewFlowiseProvider(endpoint)
	}
}
