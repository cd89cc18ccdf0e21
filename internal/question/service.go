package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/oracle"
	"github.com/saulo-duarte/persona-quiz/internal/retry"
	"github.com/saulo-duarte/persona-quiz/internal/theme"
)

var errRejectedBatch = errors.New("question batch rejected")

type Service interface {
	GenerateQuestions(ctx context.Context, req Request) ([]Question, error)
	Generate(ctx context.Context, instruction, themeID string) ([]Question, error)
}

type Options struct {
	Count      int
	Retry      retry.Policy
	Params     oracle.Params
	Structured bool
	// Diversity is skipped when nil.
	Diversity *DiversityRule
}

type service struct {
	oracle oracle.Client
	themes *theme.Registry
	opts   Options
}

func NewService(client oracle.Client, themes *theme.Registry, opts Options) Service {
	if opts.Count <= 0 {
		opts.Count = 10
	}
	if opts.Retry.Retryable == nil {
		opts.Retry.Retryable = apperr.Retryable
	}
	if opts.Structured {
		opts.Params.Schema = ResponseSchema(opts.Count)
	}
	return &service{oracle: client, themes: themes, opts: opts}
}

func (s *service) GenerateQuestions(ctx context.Context, req Request) ([]Question, error) {
	th, instruction, err := s.themes.Resolve(req.PromptType, req.CustomPrompt)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, instruction, th.ID)
}

// Generate asks the oracle for a batch until one passes validation or the
// attempts run out.
func (s *service) Generate(ctx context.Context, instruction, themeID string) ([]Question, error) {
	log := config.WithContext(ctx).WithField("theme", themeID)

	if strings.TrimSpace(instruction) == "" {
		return nil, apperr.Validation("Invalid prompt type or missing custom prompt")
	}

	var focus string
	if th, ok := s.themes.Get(themeID); ok {
		focus = th.QuestionFocus
	}
	prompt := BuildPrompt(instruction, focus, s.opts.Count, s.opts.Structured)

	var questions []Question
	err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context, attempt int) error {
		log := log.WithField("attempt", attempt)

		raw, err := s.oracle.Generate(ctx, prompt, s.opts.Params)
		if err != nil {
			log.WithError(err).Warn("Oracle call failed")
			return err
		}

		parsed, err := Parse(raw)
		if err != nil {
			log.WithError(err).Warn("Oracle output had no parsable questions")
			return err
		}
		if err := s.validate(parsed); err != nil {
			log.WithError(err).Warn("Rejected question batch")
			return err
		}

		questions = parsed
		return nil
	})
	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			log.WithError(err).Error("Question generation exhausted its attempts")
			return nil, apperr.Generation("unable to generate valid questions", err)
		}
		return nil, err
	}

	log.WithFields(logrus.Fields{"count": len(questions)}).Info("Generated questions")
	return questions, nil
}

func (s *service) validate(questions []Question) error {
	if len(questions) != s.opts.Count {
		return fmt.Errorf("%w: got %d questions, want %d", errRejectedBatch, len(questions), s.opts.Count)
	}
	for i, q := range questions {
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("%w: question %d has %d options", errRejectedBatch, i+1, len(q.Options))
		}
	}
	if s.opts.Diversity != nil && s.opts.Diversity.Repetitive(questions) {
		return fmt.Errorf("%w: questions are too repetitive", errRejectedBatch)
	}
	return nil
}
