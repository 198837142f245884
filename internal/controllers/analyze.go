package controllers

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/rahul4469/text-analyzer/internal/models"
	"github.com/rahul4469/text-analyzer/internal/services"
	"github.com/rahul4469/text-analyzer/internal/views"
)

// AnalyzeController handles the text analysis form and its results page.
type AnalyzeController struct {
	analyzer  *services.TextAnalyzer
	templates AnalyzeTemplates
}

// AnalyzeTemplates holds the templates for the analysis pages.
type AnalyzeTemplates struct {
	Form   *views.Template
	Result *views.Template
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(analyzer *services.TextAnalyzer, templates AnalyzeTemplates) *AnalyzeController {
	return &AnalyzeController{
		analyzer:  analyzer,
		templates: templates,
	}
}

// AnalyzeFormData holds data for the input form template.
type AnalyzeFormData struct {
	UserText string
}

// AnalysisResultData holds data for the result template.
type AnalysisResultData struct {
	UserText string
	Result   *models.AnalysisResult
}

// GetForm renders the text input form.
func (c *AnalyzeController) GetForm(w http.ResponseWriter, r *http.Request) {
	data := &views.TemplateData{
		Title:     "Multi-Language NLP Analyzer",
		CSRFToken: csrf.TemplateField(r),
		Data:      AnalyzeFormData{},
	}
	c.templates.Form.ExecuteHTTP(w, r, data)
}

// PostAnalyze handles the form submission and renders the analysis result.
func (c *AnalyzeController) PostAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.renderFormError(w, r, "", "Invalid form data")
		return
	}

	userText := r.FormValue("user_text")

	result := c.analyzer.Analyze(r.Context(), userText)
	if result.Empty() {
		c.renderFormError(w, r, userText, "Please enter some text for analysis.")
		return
	}

	data := &views.TemplateData{
		Title:     "Analysis Result",
		CSRFToken: csrf.TemplateField(r),
		Data: AnalysisResultData{
			UserText: userText,
			Result:   result,
		},
	}
	c.templates.Result.ExecuteHTTP(w, r, data)
}

// renderFormError re-renders the input form with an error message.
func (c *AnalyzeController) renderFormError(w http.ResponseWriter, r *http.Request, userText, errMsg string) {
	data := &views.TemplateData{
		Title:     "Multi-Language NLP Analyzer",
		CSRFToken: csrf.TemplateField(r),
		Error:     errMsg,
		Data: AnalyzeFormData{
			UserText: userText,
		},
	}
	c.templates.Form.ExecuteHTTPWithStatus(w, r, http.StatusUnprocessableEntity, data)
}
