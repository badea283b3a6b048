package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasferreira/fluentia/internal/config"
	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider cria um provider direto para o Gemini, como alternativa ao
// endpoint Flowise. A chave vem de GEMINI_API_KEY, lida pelo próprio SDK.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return &geminiProvider{
		client: client,
		model:  config.EnvOr("GEMINI_MODEL", "gemini-2.0-flash"),
	}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar conteúdo do Gemini")
		return "", &TransportError{Err: err}
	}

	raw := result.Text()
	log.Debugf("Resposta bruta do Gemini:\n%s", raw)

	if raw == "" {
		return "", &TransportError{Err: errors.New("resposta vazia do modelo")}
	}
	return raw, nil
}
