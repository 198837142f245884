package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"github.com/rahul4469/text-analyzer/internal/config"
	"github.com/rahul4469/text-analyzer/internal/controllers"
	"github.com/rahul4469/text-analyzer/internal/middleware"
	"github.com/rahul4469/text-analyzer/internal/services"
	"github.com/rahul4469/text-analyzer/internal/views"
	"github.com/rahul4469/text-analyzer/internal/vnnlp"
	"github.com/rahul4469/text-analyzer/templates"
)

func main() {
	cfg := config.MustLoad()

	logger := newLogger(cfg)
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.IsDevelopment() {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}

func run(cfg *config.Config, logger *zap.SugaredLogger) error {
	// Setup Services ---------------
	// All language resources load once here and are read-only afterwards,
	// so a single analyzer instance serves concurrent requests.
	logger.Infow("loading language models")
	detector := services.NewLanguageDetector()

	english, err := services.NewEnglishAnalyzer()
	if err != nil {
		return err
	}

	// A broken Vietnamese toolset is not fatal: the service starts and the
	// dispatcher fails fast for Vietnamese input.
	toolkit, err := vnnlp.Load()
	if err != nil {
		logger.Warnw("Vietnamese NLP toolkit failed to load, Vietnamese analysis will be unavailable", "error", err)
		toolkit = nil
	}
	vietnamese := services.NewVietnameseAnalyzer(toolkit)

	analyzer := services.NewTextAnalyzer(detector, english, vietnamese, logger)

	// Setup Controllers ---------------
	formTpl, err := views.ParseFS(templates.FS, logger, "pages/home.gohtml")
	if err != nil {
		return err
	}
	resultTpl, err := views.ParseFS(templates.FS, logger, "pages/result.gohtml")
	if err != nil {
		return err
	}

	analyzeCtrl := controllers.NewAnalyzeController(analyzer, controllers.AnalyzeTemplates{
		Form:   formTpl,
		Result: resultTpl,
	})

	// Middleware ---------------
	csrfMw := csrf.Protect(
		[]byte(cfg.Security.CSRFKey),
		csrf.Secure(cfg.Security.SecureCookies),
		csrf.Path("/"),
		csrf.TrustedOrigins(cfg.Security.TrustedOrigins),
	)
	requestLogger := middleware.NewRequestLogger(logger)

	// Setup router and routes
	r := chi.NewRouter()
	r.Use(requestLogger.Handler)
	r.Use(csrfMw)

	r.Get("/", analyzeCtrl.GetForm)
	r.Post("/analyze", analyzeCtrl.PostAnalyze)
	r.Get("/healthz", controllers.HealthCheck)

	// Start the Server
	logger.Infow("starting server", "address", cfg.Server.Address)
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return server.ListenAndServe()
}
