// Package vnnlp is a small self-contained Vietnamese NLP toolkit: a
// lexicon-driven word segmenter, a POS tagger, and a gazetteer-based
// named-entity tagger emitting BIO tags.
//
// All data ships embedded in the binary. A Toolkit is loaded once at process
// start and is read-only afterwards, so it is safe for concurrent use.
package vnnlp

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed data/*.txt
var dataFS embed.FS

// Toolkit holds the loaded Vietnamese language resources.
type Toolkit struct {
	words      map[string]struct{} // multi-syllable words, lowercase, space-joined
	maxWordLen int                 // longest lexicon entry, in syllables

	posLex map[string]string // lowercase word -> POS tag

	gazetteer map[string]string // lowercase phrase -> entity type (PER, LOC, ORG)
	maxGazLen int
}

// Load reads the embedded lexicons and builds a Toolkit. An error here means
// the Vietnamese analysis path is unavailable; the caller decides whether
// that is fatal.
func Load() (*Toolkit, error) {
	t := &Toolkit{
		words:     make(map[string]struct{}),
		posLex:    make(map[string]string),
		gazetteer: make(map[string]string),
	}

	err := readLines("data/words.txt", func(line string) error {
		word := strings.ToLower(line)
		t.words[word] = struct{}{}
		if n := syllableCount(word); n > t.maxWordLen {
			t.maxWordLen = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readLines("data/postags.txt", func(line string) error {
		word, tag, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("malformed POS lexicon line: %q", line)
		}
		t.posLex[strings.ToLower(word)] = tag
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readLines("data/gazetteer.txt", func(line string) error {
		phrase, label, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("malformed gazetteer line: %q", line)
		}
		phrase = strings.ToLower(phrase)
		t.gazetteer[phrase] = label
		if n := syllableCount(phrase); n > t.maxGazLen {
			t.maxGazLen = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(t.words) == 0 || len(t.posLex) == 0 || len(t.gazetteer) == 0 {
		return nil, fmt.Errorf("vnnlp: embedded lexicons are empty")
	}

	return t, nil
}

// readLines invokes fn for each non-blank, non-comment line of an embedded
// data file.
func readLines(path string, fn func(line string) error) error {
	f, err := dataFS.Open(path)
	if err != nil {
		return fmt.Errorf("vnnlp: open %s: %w", path, err)
	}
	defer f.Close()

	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("vnnlp: %s: %w", path, err)
		}
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("vnnlp: read %s: %w", path, err)
	}
	return nil
}

func syllableCount(phrase string) int {
	return len(strings.Fields(phrase))
}
