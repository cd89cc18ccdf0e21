package question

import (
	"time"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/oracle"
	"github.com/saulo-duarte/persona-quiz/internal/retry"
	"github.com/saulo-duarte/persona-quiz/internal/theme"
)

type QuestionContainer struct {
	Service Service
	Handler *Handler
}

func NewQuestionContainer(cfg config.Config, client oracle.Client, themes *theme.Registry) *QuestionContainer {
	opts := Options{
		Count: cfg.Generation.QuestionCount,
		Retry: retry.Policy{
			Attempts:  cfg.Generation.Attempts,
			Delay:     config.Duration(cfg.Generation.RetryDelay, 1500*time.Millisecond),
			Retryable: apperr.Retryable,
		},
		Params:     oracle.ParamsFrom(cfg.Oracle.Questions),
		Structured: cfg.Oracle.StructuredOutput,
	}
	if d := cfg.Generation.Diversity; d.Enabled {
		opts.Diversity = &DiversityRule{
			MinWordLen:   d.MinWordLen,
			MaxRepeats:   d.MaxRepeats,
			MaxRepeaters: d.MaxRepeaters,
		}
	}

	service := NewService(client, themes, opts)
	handler := NewHandler(service, cfg.IsDevelopment())

	return &QuestionContainer{
		Service: service,
		Handler: handler,
	}
}
