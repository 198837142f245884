package vnnlp

import "strings"

// BIOToken is one syllable-level token from the entity tagger with its BIO
// tag: "B-<TYPE>" opens an entity, "I-<TYPE>" continues one, "O" is outside
// any entity.
type BIOToken struct {
	Text string
	Tag  string
}

// Ner runs gazetteer-based entity tagging over the syllables of text and
// returns one BIO-tagged token per syllable. Matching is case-insensitive
// and greedy: the longest gazetteer phrase starting at each position wins.
func (t *Toolkit) Ner(text string) []BIOToken {
	sylls := Syllables(text)

	out := make([]BIOToken, 0, len(sylls))
	for i := 0; i < len(sylls); {
		label, n := t.matchEntityAt(sylls, i)
		if n == 0 {
			out = append(out, BIOToken{Text: sylls[i], Tag: "O"})
			i++
			continue
		}
		out = append(out, BIOToken{Text: sylls[i], Tag: "B-" + label})
		for j := i + 1; j < i+n; j++ {
			out = append(out, BIOToken{Text: sylls[j], Tag: "I-" + label})
		}
		i += n
	}
	return out
}

// matchEntityAt returns the label and syllable length of the longest
// gazetteer phrase starting at position i, or ("", 0) when none matches.
func (t *Toolkit) matchEntityAt(sylls []string, i int) (string, int) {
	maxLen := t.maxGazLen
	if maxLen > len(sylls)-i {
		maxLen = len(sylls) - i
	}
	for n := maxLen; n >= 1; n-- {
		if !allWordSyllables(sylls[i : i+n]) {
			continue
		}
		key := strings.ToLower(strings.Join(sylls[i:i+n], " "))
		if label, ok := t.gazetteer[key]; ok {
			return label, n
		}
	}
	return "", 0
}
