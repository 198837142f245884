package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rahul4469/text-analyzer/internal/services"
	"github.com/rahul4469/text-analyzer/internal/views"
	"github.com/rahul4469/text-analyzer/internal/vnnlp"
	"github.com/rahul4469/text-analyzer/templates"
)

func newController(t *testing.T) *AnalyzeController {
	t.Helper()

	logger := zap.NewNop().Sugar()

	english, err := services.NewEnglishAnalyzer()
	require.NoError(t, err)

	toolkit, err := vnnlp.Load()
	require.NoError(t, err)

	analyzer := services.NewTextAnalyzer(
		services.NewLanguageDetector(),
		english,
		services.NewVietnameseAnalyzer(toolkit),
		logger,
	)

	formTpl, err := views.ParseFS(templates.FS, logger, "pages/home.gohtml")
	require.NoError(t, err)
	resultTpl, err := views.ParseFS(templates.FS, logger, "pages/result.gohtml")
	require.NoError(t, err)

	return NewAnalyzeController(analyzer, AnalyzeTemplates{
		Form:   formTpl,
		Result: resultTpl,
	})
}

func postAnalyze(t *testing.T, c *AnalyzeController, text string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{"user_text": {text}}
	r := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	c.PostAnalyze(w, r)
	return w
}

func TestGetFormRendersTextarea(t *testing.T) {
	c := newController(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	c.GetForm(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="user_text"`)
	assert.Contains(t, w.Body.String(), "Analyze Text")
}

func TestPostAnalyzeRendersEnglishResult(t *testing.T) {
	c := newController(t)

	w := postAnalyze(t, c, "The cat sat on the mat. The dog ran.")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Detected Language:")
	assert.Contains(t, body, "EN")
	assert.Contains(t, body, "Sentence Count:")
}

func TestPostAnalyzeEmptyInputReturnsToForm(t *testing.T) {
	c := newController(t)

	w := postAnalyze(t, c, "   ")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter some text for analysis.")
}

func TestPostAnalyzeUnsupportedLanguageShowsError(t *testing.T) {
	c := newController(t)

	w := postAnalyze(t, c, "Je suis étudiant à Paris et j'aime beaucoup la cuisine française.")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Error:")
	assert.Contains(t, body, "not supported")
}
