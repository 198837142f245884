package vnnlp

import (
	"regexp"
	"strings"
	"unicode"
)

// reSyllable splits text into syllables (letter/digit runs) and single
// punctuation marks.
var reSyllable = regexp.MustCompile(`[\pL\pN]+|[^\s\pL\pN]`)

// Syllables splits raw text into syllable and punctuation tokens. This is
// the unit the segmenter and entity tagger operate on.
func Syllables(text string) []string {
	return reSyllable.FindAllString(text, -1)
}

// WordTokenize segments text into Vietnamese words using greedy longest
// match against the word lexicon. Syllables of a multi-syllable word are
// joined with "_" in the output, e.g. "Hà Nội" -> "Hà_Nội", so the result
// splits on whitespace into discrete word tokens.
func (t *Toolkit) WordTokenize(text string) string {
	sylls := Syllables(text)

	var out []string
	for i := 0; i < len(sylls); {
		n := t.matchWordAt(sylls, i, t.maxWordLen)
		if n > 1 {
			out = append(out, strings.Join(sylls[i:i+n], "_"))
			i += n
			continue
		}
		out = append(out, sylls[i])
		i++
	}
	return strings.Join(out, " ")
}

// matchWordAt returns the length in syllables of the longest lexicon word
// starting at position i, or 1 when only the single syllable matches.
func (t *Toolkit) matchWordAt(sylls []string, i, maxLen int) int {
	if maxLen > len(sylls)-i {
		maxLen = len(sylls) - i
	}
	for n := maxLen; n >= 2; n-- {
		if !allWordSyllables(sylls[i : i+n]) {
			continue
		}
		key := strings.ToLower(strings.Join(sylls[i:i+n], " "))
		if _, ok := t.words[key]; ok {
			return n
		}
	}
	return 1
}

// allWordSyllables reports whether every token is a letter/digit run, so a
// lexicon word never spans punctuation.
func allWordSyllables(sylls []string) bool {
	for _, s := range sylls {
		r := []rune(s)[0]
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
