package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rahul4469/text-analyzer/internal/models"
	"github.com/rahul4469/text-analyzer/internal/vnnlp"
)

func newTextAnalyzer(t *testing.T, withVietnamese bool) *TextAnalyzer {
	t.Helper()

	english := newEnglishAnalyzer(t)

	var toolkit *vnnlp.Toolkit
	if withVietnamese {
		var err error
		toolkit, err = vnnlp.Load()
		require.NoError(t, err)
	}

	return NewTextAnalyzer(
		NewLanguageDetector(),
		english,
		NewVietnameseAnalyzer(toolkit),
		zap.NewNop().Sugar(),
	)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	analyzer := newTextAnalyzer(t, true)

	for _, input := range []string{"", "   ", "\n\t  \n"} {
		result := analyzer.Analyze(context.Background(), input)
		assert.Equal(t, models.LanguageUnknown, result.Language)
		assert.False(t, result.Failed())
		assert.True(t, result.Empty())
	}
}

func TestAnalyzeEnglish(t *testing.T) {
	analyzer := newTextAnalyzer(t, true)

	result := analyzer.Analyze(context.Background(), "The cat sat on the mat. The dog ran.")

	require.False(t, result.Failed())
	assert.Equal(t, "en", result.Language)
	assert.Equal(t, 2, result.SentenceCount)
	assert.NotContains(t, result.Tokens, "the")

	// Every analytic field is present on a success, never nil.
	assert.NotNil(t, result.Tokens)
	assert.NotNil(t, result.Lemmas)
	assert.NotNil(t, result.Entities)
	assert.NotNil(t, result.POSTags)

	assert.LessOrEqual(t, len(result.Tokens), models.MaxTokens)
	assert.LessOrEqual(t, len(result.Lemmas), models.MaxLemmas)
	assert.LessOrEqual(t, len(result.POSTags), models.MaxPOSTags)
}

func TestAnalyzeVietnamese(t *testing.T) {
	analyzer := newTextAnalyzer(t, true)

	result := analyzer.Analyze(context.Background(), "Tôi là sinh viên ở Hà Nội và tôi yêu Việt Nam.")

	require.False(t, result.Failed())
	assert.Equal(t, "vi", result.Language)
	assert.NotNil(t, result.Lemmas)
	assert.Empty(t, result.Lemmas)
	assert.NotEmpty(t, result.Tokens)
}

func TestAnalyzeVietnameseUnavailable(t *testing.T) {
	analyzer := newTextAnalyzer(t, false)

	result := analyzer.Analyze(context.Background(), "Tôi là sinh viên ở Hà Nội và tôi yêu Việt Nam.")

	require.True(t, result.Failed())
	assert.Contains(t, *result.ErrorDetails, "Vietnamese NLP tools")
	assert.Contains(t, *result.ErrorDetails, "not available")
}

func TestAnalyzeUnsupportedLanguage(t *testing.T) {
	analyzer := newTextAnalyzer(t, true)

	result := analyzer.Analyze(context.Background(),
		"Je suis étudiant à Paris et j'aime beaucoup la cuisine française.")

	require.True(t, result.Failed())
	assert.Equal(t, "fr", result.Language)
	assert.Contains(t, *result.ErrorDetails, "'fr'")
	assert.Contains(t, *result.ErrorDetails, "not supported")
}

func TestAnalyzeDetectionFallback(t *testing.T) {
	analyzer := newTextAnalyzer(t, true)

	// No letters at all: the detector cannot decide, so the English
	// pipeline runs as a best-effort default.
	result := analyzer.Analyze(context.Background(), "12345 67890")

	require.False(t, result.Failed())
	assert.Equal(t, models.LanguageFallback, result.Language)
}

func TestAnalyzeIdempotent(t *testing.T) {
	analyzer := newTextAnalyzer(t, true)
	text := "Google opened a new office in London. The team is growing."

	first := analyzer.Analyze(context.Background(), text)
	second := analyzer.Analyze(context.Background(), text)

	assert.Equal(t, first.Language, second.Language)
	assert.Equal(t, first.WordCount, second.WordCount)
	assert.Equal(t, first.SentenceCount, second.SentenceCount)
	assert.Equal(t, first.Tokens, second.Tokens)
	assert.Equal(t, first.Entities, second.Entities)
	assert.Equal(t, first.POSTags, second.POSTags)
	// Lemma ordering follows map iteration and may differ between calls;
	// only set membership is stable.
	assert.ElementsMatch(t, first.Lemmas, second.Lemmas)
}

func TestRunStrategyConvertsErrors(t *testing.T) {
	analyzer := newTextAnalyzer(t, true)

	result := analyzer.runStrategy("English", "en", func() (*models.AnalysisResult, error) {
		return nil, errors.New("tokenizer exploded")
	})

	require.True(t, result.Failed())
	assert.Equal(t, "English NLP error: tokenizer exploded", *result.ErrorDetails)
}

func TestRunStrategyConvertsPanics(t *testing.T) {
	analyzer := newTextAnalyzer(t, true)

	result := analyzer.runStrategy("Vietnamese", "vi", func() (*models.AnalysisResult, error) {
		panic("index out of range")
	})

	require.True(t, result.Failed())
	assert.Equal(t, "Vietnamese NLP error: index out of range", *result.ErrorDetails)
	assert.Equal(t, "vi", result.Language)
}

func TestDetectorIsDeterministic(t *testing.T) {
	detector := NewLanguageDetector()

	text := "The quick brown fox jumps over the lazy dog."
	code, ok := detector.Detect(text)
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		again, ok := detector.Detect(text)
		require.True(t, ok)
		assert.Equal(t, code, again)
	}
}

func TestDetectorCodes(t *testing.T) {
	detector := NewLanguageDetector()

	tests := []struct {
		text string
		want string
	}{
		{"The weather in London is lovely this time of year.", "en"},
		{"Tôi là sinh viên và tôi đang học tiếng Việt ở Hà Nội.", "vi"},
	}
	for _, tt := range tests {
		code, ok := detector.Detect(tt.text)
		require.True(t, ok)
		assert.Equal(t, tt.want, code, "text: %q", tt.text)
	}
}
