package services

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"

	"github.com/rahul4469/text-analyzer/internal/models"
)

//go:embed data/stopwords_en.txt
var englishDataFS embed.FS

// droppedDisplayToken is filtered from the display token list only; counts
// still include it. Cosmetic rule kept for output parity with the result
// page.
const droppedDisplayToken = "the"

// EnglishAnalyzer runs the English analysis strategy: a full prose parse
// for POS tags and entity spans, an independent case-folded tokenization
// for counts and the display token list, and stop-word filtered
// lemmatization.
type EnglishAnalyzer struct {
	lemmatizer *golem.Lemmatizer
	stopwords  map[string]struct{}
}

// NewEnglishAnalyzer loads the English lemmatizer dictionary and the
// embedded stop-word list.
func NewEnglishAnalyzer() (*EnglishAnalyzer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load English lemmatizer: %w", err)
	}

	stopwords, err := loadStopwords("data/stopwords_en.txt")
	if err != nil {
		return nil, err
	}

	return &EnglishAnalyzer{
		lemmatizer: lemmatizer,
		stopwords:  stopwords,
	}, nil
}

// Analyze runs the full English pipeline over text. The caller owns
// language labeling and failure conversion.
func (a *EnglishAnalyzer) Analyze(text string) (*models.AnalysisResult, error) {
	// Full parse of the original text: token spans with POS tags plus
	// entity spans.
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	// Independent case-folded tokenization for the counts and the display
	// list. Sentence boundaries come from the full parse above, where the
	// original capitalization helps the segmenter.
	folded, err := prose.NewDocument(
		strings.ToLower(text),
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize document: %w", err)
	}

	foldedTokens := folded.Tokens()
	tokens := make([]string, 0, len(foldedTokens))
	for _, tok := range foldedTokens {
		tokens = append(tokens, tok.Text)
	}

	return &models.AnalysisResult{
		WordCount:     len(tokens),
		SentenceCount: len(doc.Sentences()),
		Tokens:        displayTokens(tokens),
		Lemmas:        a.uniqueLemmas(tokens),
		Entities:      relabelEntities(doc.Entities()),
		POSTags:       englishPOSTags(doc.Tokens()),
	}, nil
}

// displayTokens drops the literal token "the" and truncates to the display
// limit.
func displayTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == droppedDisplayToken {
			continue
		}
		out = append(out, t)
		if len(out) == models.MaxTokens {
			break
		}
	}
	return out
}

// uniqueLemmas lemmatizes the alphabetic, non-stop-word tokens and returns
// up to MaxLemmas distinct lemmas. Deduplication happens before truncation
// and the lemmas come out in map iteration order, so ordering varies across
// runs; only set membership is stable.
func (a *EnglishAnalyzer) uniqueLemmas(tokens []string) []string {
	seen := make(map[string]struct{})
	for _, t := range tokens {
		if !isAlphabetic(t) {
			continue
		}
		if _, isStop := a.stopwords[t]; isStop {
			continue
		}
		seen[a.lemmatizer.Lemma(t)] = struct{}{}
	}

	lemmas := make([]string, 0, len(seen))
	for lemma := range seen {
		lemmas = append(lemmas, lemma)
		if len(lemmas) == models.MaxLemmas {
			break
		}
	}
	return lemmas
}

// relabelEntities drops CARDINAL spans and relabels any entity whose text
// case-insensitively equals "google" to TECH_COMPANY.
func relabelEntities(entities []prose.Entity) []models.Entity {
	out := make([]models.Entity, 0, len(entities))
	for _, ent := range entities {
		if ent.Label == "CARDINAL" {
			continue
		}
		label := ent.Label
		if strings.EqualFold(ent.Text, "google") {
			label = "TECH_COMPANY"
		}
		out = append(out, models.Entity{Text: ent.Text, Label: label})
	}
	return out
}

// englishPOSTags maps prose's Penn Treebank tags to universal labels, drops
// punctuation-class tags, relabels proper nouns, and truncates to the
// display limit in document order.
func englishPOSTags(tokens []prose.Token) []models.POSTag {
	out := make([]models.POSTag, 0, models.MaxPOSTags)
	for _, tok := range tokens {
		if strings.TrimSpace(tok.Text) == "" {
			continue
		}
		label := universalTag(tok.Tag)
		switch label {
		case "PUNCT", "SYM", "X":
			continue
		case "PROPN":
			label = "NAME"
		}
		out = append(out, models.POSTag{Token: tok.Text, Label: label})
		if len(out) == models.MaxPOSTags {
			break
		}
	}
	return out
}

// pennToUniversal maps Penn Treebank tags (prose's tagset) to the universal
// POS labels the post-processing rules are written against.
var pennToUniversal = map[string]string{
	"NN": "NOUN", "NNS": "NOUN",
	"NNP": "PROPN", "NNPS": "PROPN",
	"VB": "VERB", "VBD": "VERB", "VBG": "VERB", "VBN": "VERB",
	"VBP": "VERB", "VBZ": "VERB", "MD": "VERB",
	"JJ": "ADJ", "JJR": "ADJ", "JJS": "ADJ",
	"RB": "ADV", "RBR": "ADV", "RBS": "ADV", "WRB": "ADV",
	"PRP": "PRON", "PRP$": "PRON", "WP": "PRON", "WP$": "PRON", "EX": "PRON",
	"DT": "DET", "PDT": "DET", "WDT": "DET",
	"IN": "ADP",
	"CC": "CCONJ",
	"CD": "NUM",
	"TO": "PART", "RP": "PART", "POS": "PART",
	"UH": "INTJ",
	"FW": "X", "LS": "X",
	"SYM": "SYM", "$": "SYM", "#": "SYM",
	".": "PUNCT", ",": "PUNCT", ":": "PUNCT",
	"(": "PUNCT", ")": "PUNCT", "``": "PUNCT", "''": "PUNCT",
	"-LRB-": "PUNCT", "-RRB-": "PUNCT", "HYPH": "PUNCT",
}

func universalTag(pennTag string) string {
	if label, ok := pennToUniversal[pennTag]; ok {
		return label
	}
	return "X"
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// loadStopwords reads the embedded one-word-per-line stop-word list.
func loadStopwords(path string) (map[string]struct{}, error) {
	f, err := englishDataFS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stop-word list: %w", err)
	}
	defer f.Close()

	set := make(map[string]struct{})
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		word := strings.TrimSpace(scan.Text())
		if word != "" {
			set[word] = struct{}{}
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read stop-word list: %w", err)
	}
	return set, nil
}
