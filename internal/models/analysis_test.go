package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultStates(t *testing.T) {
	success := &AnalysisResult{
		Language: "en",
		Tokens:   []string{"cat"},
	}
	assert.False(t, success.Failed())
	assert.False(t, success.Empty())

	empty := &AnalysisResult{Language: LanguageUnknown}
	assert.False(t, empty.Failed())
	assert.True(t, empty.Empty())

	failure := FailedResult("fr", "Language 'fr' is not supported for full NLP analysis.")
	assert.True(t, failure.Failed())
	assert.False(t, failure.Empty())
	assert.Equal(t, "fr", failure.Language)
	assert.Equal(t, "Language 'fr' is not supported for full NLP analysis.", *failure.ErrorDetails)
}

func TestUnsupportedLanguageError(t *testing.T) {
	err := UnsupportedLanguageError{Code: "fr"}
	assert.Contains(t, err.Error(), "'fr'")
}
