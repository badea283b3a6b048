package generation_test

import (
	"strings"
	"testing"

	"github.com/lucasferreira/fluentia/internal/generation"
)

func TestBuildPromptQuiz(t *testing.T) {
	prompt := generation.BuildPrompt(generation.Request{
		Topic:    "Comida e Bebida",
		Level:    generation.LevelB1,
		Quantity: 7,
		Kind:     generation.KindQuiz,
	})

	esperado := "Gerar Quiz. Tópico: Comida e Bebida. Nível: B1. Quantidade: 7."
	if prompt != esperado {
		t.Errorf("Prompt inesperado:\n%q\nesperado:\n%q", prompt, esperado)
	}
}

func TestBuildPromptTraducaoA1(t *testing.T) {
	prompt := generation.BuildPrompt(generation.Request{
		Topic: "Animais",
		Level: generation.LevelA1,
		Kind:  generation.KindQuiz,
	})

	if !strings.Contains(prompt, "tradução em português") {
		t.Errorf("Prompt A1 deveria pedir tradução: %q", prompt)
	}
}

func TestBuildPromptQuantidade(t *testing.T) {
	cases := []struct {
		nome     string
		entrada  int
		esperado string
	}{
		{"ZeroUsaPadrao", 0, "Quantidade: 5."},
		{"NegativoUsaPadrao", -3, "Quantidade: 5."},
		{"AcimaDoTetoSatura", 50, "Quantidade: 10."},
		{"DentroDoIntervalo", 8, "Quantidade: 8."},
	}

	for _, c := range cases {
		t.Run(c.nome, func(t *testing.T) {
			prompt := generation.BuildPrompt(generation.Request{
				Topic:    "Viagens",
				Level:    generation.LevelB1,
				Quantity: c.entrada,
				Kind:     generation.KindQuiz,
			})
			if !strings.Contains(prompt, c.esperado) {
				t.Errorf("Esperado %q no prompt, recebido: %q", c.esperado, prompt)
			}
		})
	}
}

func TestBuildPromptFoco(t *testing.T) {
	gramatica := generation.BuildPrompt(generation.Request{Topic: "Present Perfect", Level: generation.LevelC1, Kind: generation.KindGrammar})
	if !strings.Contains(gramatica, "Foco: Gramática") {
		t.Errorf("Prompt de gramática sem foco: %q", gramatica)
	}

	vocabulario := generation.BuildPrompt(generation.Request{Topic: "Phrasal Verbs", Level: generation.LevelC1, Kind: generation.KindVocabulary})
	if !strings.Contains(vocabulario, "Foco: Vocabulário") {
		t.Errorf("Prompt de vocabulário sem foco: %q", vocabulario)
	}
}

func TestBuildPromptTeoria(t *testing.T) {
	prompt := generation.BuildPrompt(generation.Request{Topic: "Uso de artigos", Kind: generation.KindTheory})

	if !strings.Contains(prompt, "regras gramaticais") {
		t.Errorf("Prompt de teoria inesperado: %q", prompt)
	}
	if !strings.Contains(prompt, "isCorreto") {
		t.Errorf("Prompt de teoria deveria instruir o marcador de alternativa correta: %q", prompt)
	}
}
