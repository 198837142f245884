package vnnlp

import (
	"strings"
	"unicode"
)

// TaggedToken pairs a segmented word with its POS tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagset (a subset of the conventional Vietnamese treebank tags):
//
//	N noun, Np proper noun, V verb, A adjective, P pronoun, R adverb,
//	E preposition, C conjunction, M numeral, CH punctuation, F foreign/symbol
const (
	TagNoun        = "N"
	TagProperNoun  = "Np"
	TagVerb        = "V"
	TagAdjective   = "A"
	TagPronoun     = "P"
	TagAdverb      = "R"
	TagPreposition = "E"
	TagConjunction = "C"
	TagNumeral     = "M"
	TagPunctuation = "CH"
	TagForeign     = "F"
)

// PosTag segments text and assigns a POS tag to every word token. Lexicon
// lookups win; unknown tokens fall back to shape heuristics.
func (t *Toolkit) PosTag(text string) []TaggedToken {
	words := strings.Fields(t.WordTokenize(text))

	out := make([]TaggedToken, 0, len(words))
	for _, w := range words {
		out = append(out, TaggedToken{Text: w, Tag: t.tagWord(w)})
	}
	return out
}

func (t *Toolkit) tagWord(word string) string {
	key := strings.ToLower(strings.ReplaceAll(word, "_", " "))
	if tag, ok := t.posLex[key]; ok {
		return tag
	}

	runes := []rune(word)
	switch {
	case !unicode.IsLetter(runes[0]) && !unicode.IsNumber(runes[0]):
		return TagPunctuation
	case isNumeric(runes):
		return TagNumeral
	case unicode.IsUpper(runes[0]):
		return TagProperNoun
	case isASCIIWord(runes) && !t.isKnownWord(key):
		// Plain-ASCII token absent from every lexicon: assume foreign.
		return TagForeign
	default:
		return TagNoun
	}
}

func (t *Toolkit) isKnownWord(key string) bool {
	_, ok := t.words[key]
	return ok
}

func isNumeric(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// isASCIIWord reports whether the token carries no Vietnamese diacritics.
func isASCIIWord(runes []rune) bool {
	for _, r := range runes {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
