package content

import (
	"errors"
	"strings"
)

// ErrNoUsableItems indica que a normalização terminou sem nenhum item
// aproveitável: lote vazio ou todos os itens descartados. É distinto de
// ErrMalformedPayload para que o chamador sugira outro tópico em vez de
// tratar como falha transitória.
var ErrNoUsableItems = errors.New("no usable items in generated content")

// O gerador upstream não garante esquema: os nomes de campo variam entre
// chamadas. Cada conceito lógico tem uma lista de sinônimos tentados em ordem
// de prioridade.
var (
	listKeys = []string{"perguntas", "questions", "items", "conteudo", "content"}

	promptFields      = []string{"pergunta", "titulo", "question", "prompt"}
	explanationFields = []string{"explicacao", "definicao", "explanation"}
	choiceListFields  = []string{"alternativas", "opcoes", "options", "choices"}
	choiceTextFields  = []string{"texto", "text"}
	choiceFlagFields  = []string{"isCorreto", "correto", "is_correct", "correct"}
	answerFields      = []string{"resposta", "resposta_correta", "answer", "exemplo", "frase", "solucao"}
)

// Normalize transforma o texto bruto do modelo em uma lista canônica de
// itens. Só falha quando o payload não é JSON; itens individuais sem enunciado
// utilizável são descartados em silêncio, preservando o restante do lote.
func Normalize(raw string) ([]Item, error) {
	value, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	candidates := itemList(value)
	items := make([]Item, 0, len(candidates))
	for _, candidate := range candidates {
		obj, ok := candidate.(map[string]interface{})
		if !ok {
			continue
		}
		item, ok := mapItem(obj)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// itemList reconcilia as três formas de contêiner vistas na prática: lista
// direta, objeto com a lista sob uma chave conhecida, ou um único objeto.
func itemList(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		for _, key := range listKeys {
			if list, ok := v[key].([]interface{}); ok {
				return list
			}
		}
		return []interface{}{v}
	default:
		return nil
	}
}

func mapItem(obj map[string]interface{}) (Item, bool) {
	prompt := strings.TrimSpace(firstString(obj, promptFields))
	if prompt == "" {
		return Item{}, false
	}

	item := Item{
		Prompt:      prompt,
		Explanation: firstString(obj, explanationFields),
		Choices:     mapChoices(obj),
	}

	marked := 0
	for i := range item.Choices {
		if item.Choices[i].IsCorrect {
			marked++
			if marked > 1 {
				// empate: a primeira alternativa marcada vence
				item.Choices[i].IsCorrect = false
			}
		}
	}
	if marked == 0 {
		// caminho degradado: sem alternativa marcada, a resposta pode vir
		// declarada no nível do item (ou não vir, no caso de flashcards)
		item.AnswerText = firstString(obj, answerFields)
	}

	return item, true
}

func mapChoices(obj map[string]interface{}) []Choice {
	raw := firstSlice(obj, choiceListFields)
	if len(raw) == 0 {
		return nil
	}

	choices := make([]Choice, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			// o gerador às vezes devolve alternativas como strings simples
			if s := strings.TrimSpace(v); s != "" {
				choices = append(choices, Choice{Text: s})
			}
		case map[string]interface{}:
			text := strings.TrimSpace(firstString(v, choiceTextFields))
			if text == "" {
				continue
			}
			choices = append(choices, Choice{
				Text:        text,
				IsCorrect:   firstBool(v, choiceFlagFields),
				Explanation: firstString(v, explanationFields),
			})
		}
	}
	return choices
}

func firstString(obj map[string]interface{}, keys []string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstSlice(obj map[string]interface{}, keys []string) []interface{} {
	for _, k := range keys {
		if list, ok := obj[k].([]interface{}); ok {
			return list
		}
	}
	return nil
}

func firstBool(obj map[string]interface{}, keys []string) bool {
	for _, k := range keys {
		if b, ok := obj[k].(bool); ok {
			return b
		}
	}
	return false
}
