package quiz

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lucasferreira/fluentia/internal/content"
	"github.com/lucasferreira/fluentia/internal/generation"
)

type State string

const (
	StatePresenting State = "PRESENTING"
	StateChecked    State = "CHECKED"
	StateComplete   State = "COMPLETE"
)

var (
	// ErrInvalidTransition indica uso do motor fora do estado válido. É erro
	// de contrato do chamador, não condição esperada de usuário.
	ErrInvalidTransition = errors.New("invalid quiz transition")

	// ErrInvalidChoice indica índice de alternativa fora do item atual.
	ErrInvalidChoice = errors.New("choice index out of range")
)

const noSelection = -1

// Session é a máquina de estados de uma rodada de quiz. A lista de itens é
// fixa durante a vida da sessão; nada é persistido. Cada sessão pertence a um
// único chamador por vez: o motor não faz sincronização interna.
type Session struct {
	ID        uuid.UUID
	Request   generation.Request
	Items     []content.Item
	Position  int
	Selection int
	State     State
	Score     int
}

// NewSession valida e inicia uma sessão. Itens sem alternativas não podem
// pontuar, então a construção falha em vez de aceitar uma sessão inerte.
func NewSession(items []content.Item) (*Session, error) {
	if len(items) == 0 {
		return nil, content.ErrNoUsableItems
	}
	for _, item := range items {
		if len(item.Choices) == 0 {
			return nil, content.ErrNoUsableItems
		}
	}
	return &Session{
		ID:        uuid.New(),
		Items:     items,
		Selection: noSelection,
		State:     StatePresenting,
	}, nil
}

// Current devolve o item na posição atual. O segundo retorno é falso quando a
// sessão já terminou.
func (s *Session) Current() (content.Item, bool) {
	if s.Position >= len(s.Items) {
		return content.Item{}, false
	}
	return s.Items[s.Position], true
}

// Select registra a alternativa escolhida para o item atual. Pode ser chamada
// de novo antes de Check: a última escolha vence.
func (s *Session) Select(choice int) error {
	if s.State != StatePresenting {
		return ErrInvalidTransition
	}
	item, _ := s.Current()
	if choice < 0 || choice >= len(item.Choices) {
		return ErrInvalidChoice
	}
	s.Selection = choice
	return nil
}

type Feedback struct {
	Correct     bool   `json:"correct"`
	CorrectText string `json:"correct_text"`
	Explanation string `json:"explanation,omitempty"`
	Score       int    `json:"score"`
}

// Check avalia a alternativa selecionada, pontua se correta e produz o
// feedback exibido ao aluno. Exige uma seleção prévia.
func (s *Session) Check() (Feedback, error) {
	if s.State != StatePresenting || s.Selection == noSelection {
		return Feedback{}, ErrInvalidTransition
	}

	item, _ := s.Current()
	selected := item.Choices[s.Selection]
	if selected.IsCorrect {
		s.Score++
	}
	s.State = StateChecked

	fb := Feedback{
		Correct: selected.IsCorrect,
		Score:   s.Score,
	}
	if c, ok := item.CorrectChoice(); ok {
		fb.CorrectText = c.Text
	} else {
		// nenhuma alternativa marcada: exibe a resposta declarada no item
		fb.CorrectText = item.AnswerText
	}
	if selected.Explanation != "" {
		fb.Explanation = selected.Explanation
	} else {
		fb.Explanation = item.Explanation
	}
	return fb, nil
}

type Summary struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Advance passa ao próximo item ou, no último, encerra a sessão devolvendo o
// resultado final.
func (s *Session) Advance() (*Summary, error) {
	if s.State != StateChecked {
		return nil, ErrInvalidTransition
	}
	if s.Position+1 < len(s.Items) {
		s.Position++
		s.Selection = noSelection
		s.State = StatePresenting
		return nil, nil
	}
	s.Position = len(s.Items)
	s.State = StateComplete
	return &Summary{Score: s.Score, Total: len(s.Items)}, nil
}

// Restart reinicia a sessão do zero, com a mesma lista ou com itens recém
// gerados. Só faz sentido a partir de uma sessão completa.
func (s *Session) Restart(items []content.Item) error {
	if s.State != StateComplete {
		return ErrInvalidTransition
	}
	if len(items) > 0 {
		for _, item := range items {
			if len(item.Choices) == 0 {
				return content.ErrNoUsableItems
			}
		}
		s.Items = items
	}
	s.Position = 0
	s.Score = 0
	s.Selection = noSelection
	s.State = StatePresenting
	return nil
}

// Progress devolve a fração de itens já ultrapassados, em [0,1]. O item em
// exibição ainda não conta como progresso.
func (s *Session) Progress() float64 {
	if len(s.Items) == 0 {
		return 0
	}
	return float64(s.Position) / float64(len(s.Items))
}
