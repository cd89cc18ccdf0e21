package followup

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/saulo-duarte/persona-quiz/internal/analysis"
	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/document"
	"github.com/saulo-duarte/persona-quiz/internal/oracle"
	"github.com/saulo-duarte/persona-quiz/internal/retry"
	"github.com/saulo-duarte/persona-quiz/internal/session"
)

var errShortAnswer = errors.New("follow-up answer too short")

type Service interface {
	Answer(ctx context.Context, in Input) (Result, error)
}

type Options struct {
	Retry    retry.Policy
	Params   oracle.Params
	MinChars int
	Budget   session.Budget
}

type service struct {
	oracle oracle.Client
	opts   Options
}

func NewService(client oracle.Client, opts Options) Service {
	if opts.Retry.Retryable == nil {
		opts.Retry.Retryable = apperr.Retryable
	}
	if opts.MinChars <= 0 {
		opts.MinChars = 50
	}
	return &service{oracle: client, opts: opts}
}

// Answer responds to one follow-up question. The budget is checked before
// the oracle is called; incrementing the count is left to the caller.
func (s *service) Answer(ctx context.Context, in Input) (Result, error) {
	log := config.WithContext(ctx).WithField("interaction_count", in.InteractionCount)

	previous := document.PlainText(in.PreviousAnalysis)
	question := analysis.Sanitize(in.Question)
	if previous == "" || question == "" {
		return Result{}, apperr.Validation("Question and previous analysis are required")
	}
	if s.opts.Budget.Exhausted(in.InteractionCount) {
		return Result{}, apperr.RateLimit("maximum follow-ups reached")
	}

	prompt := BuildPrompt(previous, question)

	var doc document.Document
	err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context, attempt int) error {
		log := log.WithField("attempt", attempt)

		raw, err := s.oracle.Generate(ctx, prompt, s.opts.Params)
		if err != nil {
			log.WithError(err).Warn("Oracle call failed")
			return err
		}

		parsed := document.Parse(raw, Sections)
		if n := utf8.RuneCountInString(parsed.Text()); n < s.opts.MinChars {
			log.WithField("chars", n).Warn("Follow-up answer too short")
			return fmt.Errorf("%w: %d chars, want at least %d", errShortAnswer, n, s.opts.MinChars)
		}

		doc = parsed
		return nil
	})
	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			log.WithError(err).Error("Follow-up generation exhausted its attempts")
			return Result{}, apperr.Generation("Failed to generate follow-up response", err)
		}
		return Result{}, err
	}

	log.WithField("sections", doc.Len()).Info("Answered follow-up")
	return Result{
		Document:              doc,
		RemainingInteractions: s.opts.Budget.Remaining(in.InteractionCount),
	}, nil
}
