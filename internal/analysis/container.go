package analysis

import (
	"time"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/oracle"
	"github.com/saulo-duarte/persona-quiz/internal/retry"
	"github.com/saulo-duarte/persona-quiz/internal/session"
	"github.com/saulo-duarte/persona-quiz/internal/theme"
)

type AnalysisContainer struct {
	Service Service
	Handler *Handler
}

func NewAnalysisContainer(cfg config.Config, client oracle.Client, themes *theme.Registry, tokens *session.Tokens) *AnalysisContainer {
	budget := session.NewBudget(cfg.Session.MaxInteractions)

	service := NewService(client, themes, Options{
		Retry: retry.Policy{
			Attempts:  cfg.Generation.Attempts,
			Delay:     config.Duration(cfg.Generation.RetryDelay, 1500*time.Millisecond),
			Retryable: apperr.Retryable,
		},
		Params:   oracle.ParamsFrom(cfg.Oracle.Analysis),
		MinChars: cfg.Generation.MinAnalysisChars,
		Budget:   budget,
	})
	handler := NewHandler(service, budget, tokens, cfg.IsDevelopment())

	return &AnalysisContainer{
		Service: service,
		Handler: handler,
	}
}
