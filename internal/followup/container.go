package followup

import (
	"time"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/oracle"
	"github.com/saulo-duarte/persona-quiz/internal/retry"
	"github.com/saulo-duarte/persona-quiz/internal/session"
)

type FollowUpContainer struct {
	Service Service
	Handler *Handler
}

func NewFollowUpContainer(cfg config.Config, client oracle.Client, tokens *session.Tokens) *FollowUpContainer {
	budget := session.NewBudget(cfg.Session.MaxInteractions)

	service := NewService(client, Options{
		Retry: retry.Policy{
			Attempts:  cfg.Generation.Attempts,
			Delay:     config.Duration(cfg.Generation.RetryDelay, 1500*time.Millisecond),
			Retryable: apperr.Retryable,
		},
		Params:   oracle.ParamsFrom(cfg.Oracle.FollowUp),
		MinChars: cfg.Generation.MinFollowUpChars,
		Budget:   budget,
	})
	handler := NewHandler(service, budget, tokens, cfg.IsDevelopment())

	return &FollowUpContainer{
		Service: service,
		Handler: handler,
	}
}
