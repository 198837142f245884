package services

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// candidateLanguages is the fixed set the detector chooses among. Languages
// beyond English and Vietnamese are present so that, say, French input is
// detected as French and rejected as unsupported instead of being forced
// into one of the two pipelines.
var candidateLanguages = []lingua.Language{
	lingua.English,
	lingua.Vietnamese,
	lingua.French,
	lingua.Spanish,
	lingua.German,
	lingua.Portuguese,
	lingua.Chinese,
	lingua.Japanese,
}

// LanguageDetector wraps lingua's statistical language detector. lingua is
// fully deterministic, so repeated calls on identical input always return
// the same code.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector builds the detector with its language models
// preloaded, so the cost is paid at startup rather than on the first
// request.
func NewLanguageDetector() *LanguageDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidateLanguages...).
		WithPreloadedLanguageModels().
		Build()

	return &LanguageDetector{detector: detector}
}

// Detect returns the lowercase ISO 639-1 code of the text's most likely
// language. ok is false when the detector cannot decide; the caller is
// expected to fall back to English.
func (d *LanguageDetector) Detect(text string) (code string, ok bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
