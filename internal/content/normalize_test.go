package content_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lucasferreira/fluentia/internal/content"
)

func TestNormalizeContainerShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"ListaDireta", `[{"pergunta": "A"}, {"pergunta": "B"}]`, 2},
		{"ChavePerguntas", `{"perguntas": [{"pergunta": "A"}]}`, 1},
		{"ChaveItems", `{"items": [{"pergunta": "A"}, {"pergunta": "B"}]}`, 2},
		{"ChaveConteudo", `{"conteudo": [{"pergunta": "A"}]}`, 1},
		{"ObjetoUnico", `{"pergunta": "A"}`, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := content.Normalize(tc.raw)
			if err != nil {
				t.Fatalf("Normalize falhou: %v", err)
			}
			if len(items) != tc.want {
				t.Errorf("Esperado %d itens, recebido %d", tc.want, len(items))
			}
		})
	}
}

func TestNormalizeSynonymRoundTrip(t *testing.T) {
	variantA := `[{
		"pergunta": "What is the capital of France?",
		"explicacao": "Basic geography",
		"alternativas": [
			{"texto": "Paris", "isCorreto": true},
			{"texto": "Lyon", "isCorreto": false}
		]
	}]`
	variantB := `[{
		"question": "What is the capital of France?",
		"explanation": "Basic geography",
		"options": [
			{"text": "Paris", "is_correct": true},
			{"text": "Lyon", "is_correct": false}
		]
	}]`

	itemsA, err := content.Normalize(variantA)
	if err != nil {
		t.Fatalf("Normalize falhou para sinônimos em português: %v", err)
	}
	itemsB, err := content.Normalize(variantB)
	if err != nil {
		t.Fatalf("Normalize falhou para sinônimos em inglês: %v", err)
	}

	if !reflect.DeepEqual(itemsA, itemsB) {
		t.Errorf("Itens deveriam ser idênticos entre conjuntos de sinônimos.\nA: %#v\nB: %#v", itemsA, itemsB)
	}
}

func TestNormalizeDropsItemsWithoutPrompt(t *testing.T) {
	raw := `[
		{"pergunta": "first"},
		{"explicacao": "sem enunciado"},
		{"pergunta": "second"},
		{"outra_coisa": 42},
		{"pergunta": "third"}
	]`

	items, err := content.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize falhou: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(items) != len(want) {
		t.Fatalf("Esperado %d itens sobreviventes, recebido %d", len(want), len(items))
	}
	for i, w := range want {
		if items[i].Prompt != w {
			t.Errorf("Ordem não preservada: posição %d tem %q, esperado %q", i, items[i].Prompt, w)
		}
	}
}

func TestNormalizeDegradedAnswer(t *testing.T) {
	raw := `[{
		"pergunta": "Capital of France?",
		"alternativas": [
			{"texto": "Paris"},
			{"texto": "Lyon"},
			{"texto": "Nice"}
		],
		"resposta": "Paris"
	}]`

	items, err := content.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize falhou: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Esperado 1 item, recebido %d", len(items))
	}

	item := items[0]
	if item.AnswerText != "Paris" {
		t.Errorf("AnswerText esperado %q, recebido %q", "Paris", item.AnswerText)
	}
	if len(item.Choices) != 3 {
		t.Errorf("Alternativas deveriam ser mantidas; recebido %d", len(item.Choices))
	}
	for _, c := range item.Choices {
		if c.IsCorrect {
			t.Errorf("Nenhuma alternativa deveria estar marcada como correta: %#v", c)
		}
	}
	if item.Gradable() {
		t.Error("Item degradado não deveria ser pontuável")
	}
}

func TestNormalizeFirstMarkedChoiceWins(t *testing.T) {
	raw := `[{
		"pergunta": "Pick one",
		"alternativas": [
			{"texto": "a", "isCorreto": false},
			{"texto": "b", "isCorreto": true},
			{"texto": "c", "isCorreto": true}
		]
	}]`

	items, err := content.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize falhou: %v", err)
	}

	correct, ok := items[0].CorrectChoice()
	if !ok {
		t.Fatal("Item deveria ter uma alternativa correta")
	}
	if correct.Text != "b" {
		t.Errorf("A primeira alternativa marcada deveria vencer; recebido %q", correct.Text)
	}

	marked := 0
	for _, c := range items[0].Choices {
		if c.IsCorrect {
			marked++
		}
	}
	if marked != 1 {
		t.Errorf("Exatamente uma alternativa deveria permanecer marcada, recebido %d", marked)
	}
}

func TestNormalizeStringChoices(t *testing.T) {
	raw := `[{
		"pergunta": "Which one?",
		"alternativas": ["A) go", "B) went", "C) gone"],
		"resposta_correta": "B"
	}]`

	items, err := content.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize falhou: %v", err)
	}

	item := items[0]
	if len(item.Choices) != 3 {
		t.Fatalf("Esperado 3 alternativas, recebido %d", len(item.Choices))
	}
	if item.Choices[0].Text != "A) go" {
		t.Errorf("Texto da alternativa inesperado: %q", item.Choices[0].Text)
	}
	if item.AnswerText != "B" {
		t.Errorf("AnswerText esperado %q, recebido %q", "B", item.AnswerText)
	}
}

func TestNormalizeFlashcardWithoutAnswer(t *testing.T) {
	items, err := content.Normalize(`[{"pergunta": "Translate: dog"}]`)
	if err != nil {
		t.Fatalf("Normalize falhou: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Item sem resposta ainda deve ser incluído; recebido %d itens", len(items))
	}
	if items[0].AnswerText != "" || len(items[0].Choices) != 0 {
		t.Errorf("Flashcard deveria ficar sem resposta e sem alternativas: %#v", items[0])
	}
}

func TestNormalizeMalformedPayload(t *testing.T) {
	_, err := content.Normalize("not json")
	if !errors.Is(err, content.ErrMalformedPayload) {
		t.Errorf("Esperado ErrMalformedPayload, recebido: %v", err)
	}
}

func TestItemReveal(t *testing.T) {
	t.Run("RespostaDeclarada", func(t *testing.T) {
		item := content.Item{Prompt: "p", AnswerText: "declared"}
		if got := item.Reveal(); got != "declared" {
			t.Errorf("Reveal esperado %q, recebido %q", "declared", got)
		}
	})

	t.Run("AlternativaCorreta", func(t *testing.T) {
		item := content.Item{
			Prompt: "p",
			Choices: []content.Choice{
				{Text: "wrong"},
				{Text: "right", IsCorrect: true},
			},
		}
		if got := item.Reveal(); got != "right" {
			t.Errorf("Reveal esperado %q, recebido %q", "right", got)
		}
	})

	t.Run("SemResposta", func(t *testing.T) {
		item := content.Item{Prompt: "p"}
		if got := item.Reveal(); got != "" {
			t.Errorf("Reveal deveria ser vazio, recebido %q", got)
		}
	})
}
