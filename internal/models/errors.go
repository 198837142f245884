package models

import (
	"errors"
	"fmt"
)

// Toolset related errors. The strings double as user-facing ErrorDetails,
// so they keep the result page's sentence form.
var (
	ErrVietnameseUnavailable = errors.New("Vietnamese NLP tools (vnnlp) not available.")
)

// UnsupportedLanguageError reports a detected language the analyzer has no
// strategy for.
type UnsupportedLanguageError struct {
	Code string
}

func (e UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("Language '%s' is not supported for full NLP analysis.", e.Code)
}
