package learn

import (
	"github.com/google/uuid"
	"github.com/lucasferreira/fluentia/internal/content"
	"github.com/lucasferreira/fluentia/internal/generation"
)

// Feed acumula itens de estudo para os modos sem pontuação (flashcards,
// gramática, teoria). Só cresce: "carregar mais" concatena ao fim, sem
// reordenar nem deduplicar lotes repetidos.
type Feed struct {
	ID      uuid.UUID
	Request generation.Request
	Items   []content.Item
}

func NewFeed(req generation.Request, items []content.Item) *Feed {
	return &Feed{
		ID:      uuid.New(),
		Request: req,
		Items:   items,
	}
}

func (f *Feed) Append(items []content.Item) {
	f.Items = append(f.Items, items...)
}
