package services

import (
	"strings"

	"github.com/rahul4469/text-analyzer/internal/models"
)

// bioAggregator folds a BIO tag stream into entity spans. It is an explicit
// two-state machine (idle, or accumulating a span) so the flush/continue/
// reset transitions stay auditable independently of the tagger:
//
//	B-X           flush any open span, open a new one with type X
//	I-X, open X   append the token to the open span (space-joined)
//	anything else flush any open span (covers O and mismatched I- types)
//
// finish flushes whatever span is still open after the last token.
type bioAggregator struct {
	entities []models.Entity

	// open span; text == "" means idle
	text  string
	label string
}

func (b *bioAggregator) feed(token, tag string) {
	switch {
	case strings.HasPrefix(tag, "B-"):
		b.flush()
		b.text = token
		b.label = strings.TrimPrefix(tag, "B-")
	case b.text != "" && strings.HasPrefix(tag, "I-") && strings.TrimPrefix(tag, "I-") == b.label:
		b.text += " " + token
	default:
		b.flush()
	}
}

func (b *bioAggregator) flush() {
	if b.text != "" {
		b.entities = append(b.entities, models.Entity{Text: b.text, Label: b.label})
	}
	b.text = ""
	b.label = ""
}

func (b *bioAggregator) finish() []models.Entity {
	b.flush()
	return b.entities
}
