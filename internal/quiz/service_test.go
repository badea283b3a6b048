package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lucasferreira/fluentia/internal/catalog"
	"github.com/lucasferreira/fluentia/internal/content"
	"github.com/lucasferreira/fluentia/internal/generation"
	"github.com/lucasferreira/fluentia/internal/quiz"
)

type fakeProvider struct {
	raw   string
	err   error
	calls int
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.raw, nil
}

type fakeTopics struct{}

func (fakeTopics) List(ctx context.Context, kind catalog.TopicKind) ([]*catalog.Topic, error) {
	return nil, nil
}

func (fakeTopics) ResolvePromptContext(ctx context.Context, topic string) string {
	return topic
}

const generatedQuiz = "```json\n" + `{
	"perguntas": [
		{
			"pergunta": "Q1",
			"alternativas": [
				{"texto": "right", "isCorreto": true},
				{"texto": "wrong", "isCorreto": false}
			]
		},
		{
			"pergunta": "flashcard sem alternativas",
			"resposta": "anything"
		},
		{
			"pergunta": "Q2",
			"alternativas": [
				{"texto": "wrong", "isCorreto": false},
				{"texto": "right", "isCorreto": true}
			]
		}
	]
}` + "\n```"

func newService(p *fakeProvider) quiz.Service {
	return quiz.NewService(p, fakeTopics{}, quiz.NewInMemoryStore())
}

func TestServiceStart(t *testing.T) {
	t.Run("FiltraItensNaoPontuaveis", func(t *testing.T) {
		svc := newService(&fakeProvider{raw: generatedQuiz})

		view, err := svc.Start(context.Background(), quiz.StartSessionDTO{Topic: "comida", Level: generation.LevelB1})
		if err != nil {
			t.Fatalf("Start falhou: %v", err)
		}
		if view.Total != 2 {
			t.Errorf("Apenas itens pontuáveis deveriam entrar; esperado 2, recebido %d", view.Total)
		}
		if view.State != quiz.StatePresenting {
			t.Errorf("Estado inicial esperado PRESENTING, recebido %s", view.State)
		}
		if view.Item == nil || view.Item.Prompt != "Q1" {
			t.Errorf("Primeiro item inesperado: %#v", view.Item)
		}
	})

	t.Run("PayloadMalformado", func(t *testing.T) {
		svc := newService(&fakeProvider{raw: "resposta em prosa, sem json"})

		_, err := svc.Start(context.Background(), quiz.StartSessionDTO{Topic: "comida", Level: generation.LevelB1})
		if !errors.Is(err, content.ErrMalformedPayload) {
			t.Errorf("Esperado ErrMalformedPayload, recebido: %v", err)
		}
	})

	t.Run("LoteVazio", func(t *testing.T) {
		svc := newService(&fakeProvider{raw: `{"perguntas": []}`})

		_, err := svc.Start(context.Background(), quiz.StartSessionDTO{Topic: "comida", Level: generation.LevelB1})
		if !errors.Is(err, content.ErrNoUsableItems) {
			t.Errorf("Esperado ErrNoUsableItems, recebido: %v", err)
		}
	})

	t.Run("FalhaDeTransporte", func(t *testing.T) {
		svc := newService(&fakeProvider{err: &generation.TransportError{StatusCode: 503}})

		_, err := svc.Start(context.Background(), quiz.StartSessionDTO{Topic: "comida", Level: generation.LevelB1})
		var transport *generation.TransportError
		if !errors.As(err, &transport) {
			t.Errorf("Esperado TransportError, recebido: %v", err)
		}
	})
}

func TestServiceFullRound(t *testing.T) {
	svc := newService(&fakeProvider{raw: generatedQuiz})
	ctx := context.Background()

	view, err := svc.Start(ctx, quiz.StartSessionDTO{Topic: "viagens", Level: generation.LevelA1})
	if err != nil {
		t.Fatalf("Start falhou: %v", err)
	}
	id := uuid.MustParse(view.ID)

	// Q1: alternativa 0 é a correta
	if _, err := svc.Select(ctx, id, 0); err != nil {
		t.Fatalf("Select falhou: %v", err)
	}
	fb, err := svc.Check(ctx, id)
	if err != nil {
		t.Fatalf("Check falhou: %v", err)
	}
	if !fb.Correct || fb.Score != 1 {
		t.Errorf("Feedback inesperado: %#v", fb)
	}
	if _, err := svc.Advance(ctx, id); err != nil {
		t.Fatalf("Advance falhou: %v", err)
	}

	// Q2: alternativa 0 é errada
	if _, err := svc.Select(ctx, id, 0); err != nil {
		t.Fatalf("Select falhou: %v", err)
	}
	if _, err := svc.Check(ctx, id); err != nil {
		t.Fatalf("Check falhou: %v", err)
	}
	final, err := svc.Advance(ctx, id)
	if err != nil {
		t.Fatalf("Advance final falhou: %v", err)
	}

	if final.State != quiz.StateComplete {
		t.Errorf("Sessão deveria estar COMPLETE, recebido %s", final.State)
	}
	if final.Summary == nil || final.Summary.Score != 1 || final.Summary.Total != 2 {
		t.Errorf("Resultado final inesperado: %#v", final.Summary)
	}
}

func TestServiceRestart(t *testing.T) {
	provider := &fakeProvider{raw: generatedQuiz}
	svc := newService(provider)
	ctx := context.Background()

	view, err := svc.Start(ctx, quiz.StartSessionDTO{Topic: "escola", Level: generation.LevelB1})
	if err != nil {
		t.Fatalf("Start falhou: %v", err)
	}
	id := uuid.MustParse(view.ID)

	for i := 0; i < 2; i++ {
		_, _ = svc.Select(ctx, id, 0)
		_, _ = svc.Check(ctx, id)
		if _, err := svc.Advance(ctx, id); err != nil {
			t.Fatalf("Advance falhou: %v", err)
		}
	}

	t.Run("SemRefreshNaoGeraDeNovo", func(t *testing.T) {
		calls := provider.calls
		restarted, err := svc.Restart(ctx, id, false)
		if err != nil {
			t.Fatalf("Restart falhou: %v", err)
		}
		if provider.calls != calls {
			t.Error("Restart sem refresh não deveria chamar o provider")
		}
		if restarted.Score != 0 || restarted.Position != 0 {
			t.Errorf("Sessão não foi zerada: %#v", restarted)
		}
	})
}

func TestServiceAbandon(t *testing.T) {
	svc := newService(&fakeProvider{raw: generatedQuiz})
	ctx := context.Background()

	view, err := svc.Start(ctx, quiz.StartSessionDTO{Topic: "hobbies", Level: generation.LevelB1})
	if err != nil {
		t.Fatalf("Start falhou: %v", err)
	}
	id := uuid.MustParse(view.ID)

	if err := svc.Abandon(ctx, id); err != nil {
		t.Fatalf("Abandon falhou: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, quiz.ErrSessionNotFound) {
		t.Errorf("Sessão descartada deveria sumir do store, recebido: %v", err)
	}
}
