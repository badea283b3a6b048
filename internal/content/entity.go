package content

// Item é a unidade canônica de prática: questão de múltipla escolha,
// flashcard ou resumo de regra, já normalizada a partir da saída do modelo.
type Item struct {
	Prompt      string   `json:"prompt"`
	Explanation string   `json:"explanation,omitempty"`
	Choices     []Choice `json:"choices,omitempty"`
	AnswerText  string   `json:"answer_text,omitempty"`
}

type Choice struct {
	Text        string `json:"text"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation,omitempty"`
}

// CorrectChoice devolve a alternativa marcada como correta, se existir.
func (i Item) CorrectChoice() (Choice, bool) {
	for _, c := range i.Choices {
		if c.IsCorrect {
			return c, true
		}
	}
	return Choice{}, false
}

// Gradable informa se o item pode pontuar em um quiz: precisa de alternativas
// e de exatamente uma marcada como correta.
func (i Item) Gradable() bool {
	_, ok := i.CorrectChoice()
	return len(i.Choices) > 0 && ok
}

// Reveal devolve o texto de resposta a exibir no modo de estudo: a resposta
// declarada no item ou, na falta dela, a alternativa correta.
func (i Item) Reveal() string {
	if i.AnswerText != "" {
		return i.AnswerText
	}
	if c, ok := i.CorrectChoice(); ok {
		return c.Text
	}
	return ""
}
