package catalog

import (
	"time"

	"github.com/google/uuid"
)

type TopicKind string

const (
	TopicKindStandard TopicKind = "STANDARD"
	TopicKindFluency  TopicKind = "FLUENCY"
	TopicKindGrammar  TopicKind = "GRAMMAR"
	TopicKindTheory   TopicKind = "THEORY"
)

func (k TopicKind) Valid() bool {
	switch k {
	case TopicKindStandard, TopicKindFluency, TopicKindGrammar, TopicKindTheory:
		return true
	}
	return false
}

// Topic é uma entrada do catálogo de estudo. PromptContext é o texto que
// realmente vai no prompt de geração; Label e Icon são apenas exibição.
type Topic struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug          string    `gorm:"uniqueIndex;not null" json:"slug"`
	Label         string    `gorm:"not null" json:"label"`
	Icon          string    `json:"icon,omitempty"`
	PromptContext string    `gorm:"type:text;not null" json:"prompt_context"`
	Kind          TopicKind `gorm:"index;not null" json:"kind"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
