package generation

import "fmt"

const (
	defaultQuantity = 5
	maxQuantity     = 10
)

const translationHint = " Para cada pergunta, inclua a tradução em português entre parênteses logo após a pergunta em inglês."

// BuildPrompt monta a instrução enviada ao modelo. O formato segue o que o
// gerador upstream espera: campos 'pergunta', 'alternativas' (com 'isCorreto'),
// 'resposta' e 'explicacao', sempre em JSON puro.
func BuildPrompt(req Request) string {
	qtd := req.Quantity
	if qtd <= 0 {
		qtd = defaultQuantity
	}
	if qtd > maxQuantity {
		qtd = maxQuantity
	}

	switch req.Kind {
	case KindTheory:
		return fmt.Sprintf(
			"Gerar resumos de regras gramaticais de inglês em português. Tópico: %s. "+
				"Retorne um JSON com uma lista de itens. Para cada item: 'pergunta' deve ser a explicação da regra em português. "+
				"'alternativas' deve ser uma lista de 3 frases em inglês, onde apenas uma aplica corretamente a regra (marque com 'isCorreto': true). "+
				"'explicacao' deve explicar por que a frase escolhida está correta.",
			req.Topic,
		)
	case KindGrammar, KindVocabulary:
		prompt := fmt.Sprintf(
			"Gerar perguntas de fixação de inglês. Tópico: %s. Nível: %s. Foco: %s. "+
				"Retorne um JSON com uma lista de %d itens, onde cada item tem 'pergunta' (a questão), "+
				"'resposta' (a resposta correta) e 'explicacao' (breve explicação).",
			req.Topic, req.Level, req.Kind.Foco(), qtd,
		)
		if req.Level == LevelA1 {
			prompt += " Para cada pergunta, inclua a tradução em português entre parênteses."
		}
		return prompt
	default:
		prompt := fmt.Sprintf("Gerar Quiz. Tópico: %s. Nível: %s. Quantidade: %d.", req.Topic, req.Level, qtd)
		if req.Level == LevelA1 {
			prompt += translationHint
		}
		return prompt
	}
}
