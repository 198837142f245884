package services

import (
	"strings"

	"github.com/rahul4469/text-analyzer/internal/models"
	"github.com/rahul4469/text-analyzer/internal/vnnlp"
)

// droppedVietnameseTags are the punctuation/symbol/function-word POS
// classes excluded from the POS tag display.
var droppedVietnameseTags = map[string]struct{}{
	vnnlp.TagPronoun:     {},
	vnnlp.TagPunctuation: {},
	vnnlp.TagForeign:     {},
}

// VietnameseAnalyzer runs the Vietnamese analysis strategy over the vnnlp
// toolkit: word-segmenting tokenization, a period-split sentence heuristic,
// POS tagging, and BIO entity aggregation.
type VietnameseAnalyzer struct {
	toolkit *vnnlp.Toolkit
}

// NewVietnameseAnalyzer wraps a loaded toolkit. toolkit may be nil when
// loading failed at startup; the analyzer then reports itself unavailable
// and the dispatcher fails fast instead of calling Analyze.
func NewVietnameseAnalyzer(toolkit *vnnlp.Toolkit) *VietnameseAnalyzer {
	return &VietnameseAnalyzer{toolkit: toolkit}
}

// Available reports whether the Vietnamese toolset loaded at startup.
func (a *VietnameseAnalyzer) Available() bool {
	return a != nil && a.toolkit != nil
}

// Analyze runs the full Vietnamese pipeline over text. The caller owns
// language labeling and failure conversion.
func (a *VietnameseAnalyzer) Analyze(text string) (*models.AnalysisResult, error) {
	// The segmenter joins multi-syllable words with "_", so splitting its
	// raw output on whitespace yields discrete word tokens.
	tokens := strings.Fields(a.toolkit.WordTokenize(text))

	displayed := tokens
	if len(displayed) > models.MaxTokens {
		displayed = displayed[:models.MaxTokens]
	}

	return &models.AnalysisResult{
		WordCount:     len(tokens),
		SentenceCount: countSentences(text),
		Tokens:        displayed,
		// Lemmatization does not apply to Vietnamese; the field stays empty.
		Lemmas:   []string{},
		Entities: a.aggregateEntities(text),
		POSTags:  a.posTags(text),
	}, nil
}

// countSentences splits on the period character and counts non-blank
// segments. A known approximation, not real sentence boundary detection:
// abbreviations and "?"/"!" endings are miscounted.
func countSentences(text string) int {
	count := 0
	for _, segment := range strings.Split(text, ".") {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

func (a *VietnameseAnalyzer) posTags(text string) []models.POSTag {
	out := make([]models.POSTag, 0, models.MaxPOSTags)
	for _, tagged := range a.toolkit.PosTag(text) {
		if _, dropped := droppedVietnameseTags[tagged.Tag]; dropped {
			continue
		}
		out = append(out, models.POSTag{Token: tagged.Text, Label: tagged.Tag})
		if len(out) == models.MaxPOSTags {
			break
		}
	}
	return out
}

// aggregateEntities folds the toolkit's BIO tag stream into entity spans,
// then relabels "Việt Nam" to COUNTRY_VN. The comparison is exact and
// case-sensitive, unlike the English "google" rule; the divergence is
// deliberate output parity with the system this replaces.
func (a *VietnameseAnalyzer) aggregateEntities(text string) []models.Entity {
	var agg bioAggregator
	for _, tok := range a.toolkit.Ner(text) {
		agg.feed(tok.Text, tok.Tag)
	}
	entities := agg.finish()

	out := make([]models.Entity, 0, len(entities))
	for _, ent := range entities {
		if ent.Text == "Việt Nam" {
			ent.Label = "COUNTRY_VN"
		}
		out = append(out, ent)
	}
	return out
}
