package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rahul4469/text-analyzer/internal/models"
)

// Language codes with a dedicated analysis strategy.
const (
	codeEnglish    = "en"
	codeVietnamese = "vi"
)

// TextAnalyzer is the analysis dispatcher: it detects the input language,
// routes the text to the matching strategy, and normalizes the outcome into
// an AnalysisResult. Every internal failure, strategy panics included, is
// converted into a failure result; nothing escapes to the caller.
//
// The analyzer holds only read-only resources loaded at startup, so a
// single instance serves concurrent requests without locking.
type TextAnalyzer struct {
	detector   *LanguageDetector
	english    *EnglishAnalyzer
	vietnamese *VietnameseAnalyzer
	logger     *zap.SugaredLogger
}

// NewTextAnalyzer wires the detector and the two language strategies.
func NewTextAnalyzer(
	detector *LanguageDetector,
	english *EnglishAnalyzer,
	vietnamese *VietnameseAnalyzer,
	logger *zap.SugaredLogger,
) *TextAnalyzer {
	return &TextAnalyzer{
		detector:   detector,
		english:    english,
		vietnamese: vietnamese,
		logger:     logger,
	}
}

// Analyze processes one text end-to-end and always returns a usable result:
// a minimal {language: "unknown"} result for blank input, a success with
// all analytic fields populated, or a failure carrying ErrorDetails.
func (s *TextAnalyzer) Analyze(ctx context.Context, text string) *models.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		s.logger.Warnw("analysis requested for empty or whitespace-only text")
		return &models.AnalysisResult{Language: models.LanguageUnknown}
	}

	code, ok := s.detector.Detect(text)
	display := code
	if !ok {
		// Detection degrades rather than failing the whole pipeline.
		s.logger.Warnw("could not detect language, defaulting to English")
		code = codeEnglish
		display = models.LanguageFallback
	}

	switch code {
	case codeEnglish:
		s.logger.Infow("performing English NLP analysis")
		return s.runStrategy("English", display, func() (*models.AnalysisResult, error) {
			return s.english.Analyze(text)
		})

	case codeVietnamese:
		if !s.vietnamese.Available() {
			s.logger.Errorw("Vietnamese analysis requested but toolset is unavailable")
			return models.FailedResult(display, models.ErrVietnameseUnavailable.Error())
		}
		s.logger.Infow("performing Vietnamese NLP analysis")
		return s.runStrategy("Vietnamese", display, func() (*models.AnalysisResult, error) {
			return s.vietnamese.Analyze(text)
		})

	default:
		s.logger.Warnw("unsupported language detected", "language", code)
		return models.FailedResult(display, models.UnsupportedLanguageError{Code: code}.Error())
	}
}

// runStrategy invokes one language strategy, converting returned errors and
// panics into failure results with the language-prefixed message
// convention, and normalizes successful results.
func (s *TextAnalyzer) runStrategy(name, display string, fn func() (*models.AnalysisResult, error)) *models.AnalysisResult {
	result, err := func() (result *models.AnalysisResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%v", r)
			}
		}()
		return fn()
	}()

	if err != nil {
		s.logger.Errorw("analysis strategy failed", "strategy", name, "error", err)
		return models.FailedResult(display, fmt.Sprintf("%s NLP error: %s", name, err))
	}

	result.Language = display
	normalize(result)
	return result
}

// normalize guarantees a successful result carries all five analytic
// fields: inapplicable fields render as empty lists, never null.
func normalize(r *models.AnalysisResult) {
	if r.Tokens == nil {
		r.Tokens = []string{}
	}
	if r.Lemmas == nil {
		r.Lemmas = []string{}
	}
	if r.Entities == nil {
		r.Entities = []models.Entity{}
	}
	if r.POSTags == nil {
		r.POSTags = []models.POSTag{}
	}
}
