package learn

import (
	"github.com/lucasferreira/fluentia/internal/content"
	"github.com/lucasferreira/fluentia/internal/generation"
)

type CreateFeedDTO struct {
	Topic    string           `json:"topic"`
	Level    generation.Level `json:"level"`
	Quantity int              `json:"quantity"`
	Kind     generation.Kind  `json:"kind"`
}

// FeedItem é o item no formato de estudo: alternativas sem marcação de
// correta e a resposta já resolvida para o "revelar resposta".
type FeedItem struct {
	Prompt      string   `json:"prompt"`
	Explanation string   `json:"explanation,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	Answer      string   `json:"answer,omitempty"`
}

type FeedView struct {
	ID    string          `json:"id"`
	Topic string          `json:"topic"`
	Level string          `json:"level"`
	Kind  generation.Kind `json:"kind"`
	Total int             `json:"total"`
	Items []FeedItem      `json:"items"`
}

func viewOf(f *Feed) *FeedView {
	view := &FeedView{
		ID:    f.ID.String(),
		Topic: f.Request.Topic,
		Level: string(f.Request.Level),
		Kind:  f.Request.Kind,
		Total: len(f.Items),
		Items: make([]FeedItem, 0, len(f.Items)),
	}
	for _, item := range f.Items {
		view.Items = append(view.Items, feedItemOf(item))
	}
	return view
}

func feedItemOf(item content.Item) FeedItem {
	out := FeedItem{
		Prompt:      item.Prompt,
		Explanation: item.Explanation,
		Answer:      item.Reveal(),
	}
	for _, c := range item.Choices {
		out.Choices = append(out.Choices, c.Text)
	}
	return out
}
