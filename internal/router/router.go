package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/persona-quiz/docs"
	"github.com/saulo-duarte/persona-quiz/internal/analysis"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/followup"
	"github.com/saulo-duarte/persona-quiz/internal/middlewares"
	"github.com/saulo-duarte/persona-quiz/internal/question"
	"github.com/saulo-duarte/persona-quiz/internal/theme"
)

type RouterConfig struct {
	ThemeHandler    *theme.Handler
	QuestionHandler *question.Handler
	AnalysisHandler *analysis.Handler
	FollowUpHandler *followup.Handler
	// FollowUpLimiter guards /api/follow-up when set.
	FollowUpLimiter func(http.Handler) http.Handler
	AllowedOrigins  []string
	// StaticDir holds index.html and static/; empty disables the front end.
	StaticDir string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	followUp := followup.Routes(cfg.FollowUpHandler)
	if cfg.FollowUpLimiter != nil {
		followUp = cfg.FollowUpLimiter(followUp)
	}

	r.Route("/api", func(r chi.Router) {
		r.Mount("/prompt-types", theme.Routes(cfg.ThemeHandler))
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/analyze", analysis.Routes(cfg.AnalysisHandler))
		r.Mount("/follow-up", followUp)
	})

	if cfg.StaticDir != "" {
		static := http.FileServer(http.Dir(cfg.StaticDir))
		index := filepath.Join(cfg.StaticDir, "index.html")

		r.Handle("/static/*", static)
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, index)
		})
	}
	return r
}
