package quiz

import "github.com/lucasferreira/fluentia/internal/generation"

type StartSessionDTO struct {
	Topic    string           `json:"topic"`
	Level    generation.Level `json:"level"`
	Quantity int              `json:"quantity"`
}

type SelectDTO struct {
	Choice int `json:"choice"`
}

type RestartDTO struct {
	Refresh bool `json:"refresh"`
}

// PresentedItem é o item como o aluno o vê: sem o marcador de alternativa
// correta, que só aparece no feedback de Check.
type PresentedItem struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

type SessionView struct {
	ID       string         `json:"id"`
	State    State          `json:"state"`
	Position int            `json:"position"`
	Total    int            `json:"total"`
	Score    int            `json:"score"`
	Progress float64        `json:"progress"`
	Item     *PresentedItem `json:"item,omitempty"`
	Summary  *Summary       `json:"summary,omitempty"`
}

func viewOf(s *Session) *SessionView {
	view := &SessionView{
		ID:       s.ID.String(),
		State:    s.State,
		Position: s.Position,
		Total:    len(s.Items),
		Score:    s.Score,
		Progress: s.Progress(),
	}
	if item, ok := s.Current(); ok {
		presented := &PresentedItem{Prompt: item.Prompt, Choices: make([]string, 0, len(item.Choices))}
		for _, c := range item.Choices {
			presented.Choices = append(presented.Choices, c.Text)
		}
		view.Item = presented
	}
	if s.State == StateComplete {
		view.Summary = &Summary{Score: s.Score, Total: len(s.Items)}
	}
	return view
}
