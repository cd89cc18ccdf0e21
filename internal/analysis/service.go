package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/document"
	"github.com/saulo-duarte/persona-quiz/internal/oracle"
	"github.com/saulo-duarte/persona-quiz/internal/retry"
	"github.com/saulo-duarte/persona-quiz/internal/session"
	"github.com/saulo-duarte/persona-quiz/internal/theme"
)

var errRejectedAnalysis = errors.New("analysis rejected")

type Service interface {
	Analyze(ctx context.Context, req Request) (Result, error)
	Generate(ctx context.Context, in Input) (Result, error)
}

type Options struct {
	Retry    retry.Policy
	Params   oracle.Params
	MinChars int
	Budget   session.Budget
}

type service struct {
	oracle oracle.Client
	themes *theme.Registry
	opts   Options
}

func NewService(client oracle.Client, themes *theme.Registry, opts Options) Service {
	if opts.Retry.Retryable == nil {
		opts.Retry.Retryable = apperr.Retryable
	}
	if opts.MinChars <= 0 {
		opts.MinChars = 100
	}
	return &service{oracle: client, themes: themes, opts: opts}
}

func (s *service) Analyze(ctx context.Context, req Request) (Result, error) {
	th, instruction, err := s.themes.Resolve(req.PromptType, req.CustomPrompt)
	if err != nil {
		return Result{}, err
	}
	return s.Generate(ctx, Input{
		Instruction:      instruction,
		ThemeID:          th.ID,
		Answers:          req.Answers,
		Questions:        req.Questions,
		InteractionCount: req.InteractionCount,
	})
}

func (s *service) Generate(ctx context.Context, in Input) (Result, error) {
	if strings.TrimSpace(in.Instruction) == "" {
		return Result{}, apperr.Validation("Invalid prompt type or missing custom prompt")
	}
	if len(in.Answers) == 0 {
		return Result{}, apperr.Validation("Answers are required")
	}
	if len(in.Questions) > 0 && len(in.Questions) != len(in.Answers) {
		return Result{}, apperr.Validation("Expected %d answers, got %d", len(in.Questions), len(in.Answers))
	}

	marked := markAnswers(in.Answers, in.Questions)
	state := session.NewState(in.ThemeID, len(marked))
	for _, a := range marked {
		if err := state.Answer(state.CurrentIndex, a); err != nil {
			return Result{}, err
		}
		state.Next()
	}
	answers, err := state.Complete()
	if err != nil {
		return Result{}, apperr.Validation("Every question needs an answer")
	}

	ctx = config.WithSessionID(ctx, state.ID.String())
	log := config.WithContext(ctx).WithFields(logrus.Fields{"theme": in.ThemeID, "answers": len(answers)})

	var extras []string
	if th, ok := s.themes.Get(in.ThemeID); ok {
		extras = th.ExtraSections
	}
	headings := Headings(extras)
	prompt := BuildPrompt(in.Instruction, answers, in.Questions, headings)

	var doc document.Document
	err = retry.Do(ctx, s.opts.Retry, func(ctx context.Context, attempt int) error {
		log := log.WithField("attempt", attempt)

		raw, err := s.oracle.Generate(ctx, prompt, s.opts.Params)
		if err != nil {
			log.WithError(err).Warn("Oracle call failed")
			return err
		}

		parsed := document.Parse(raw, headings)
		if !parsed.HasSections() {
			log.Warn("Analysis had no section headings")
			return fmt.Errorf("%w: no section headings", errRejectedAnalysis)
		}
		if n := utf8.RuneCountInString(parsed.Text()); n < s.opts.MinChars {
			log.WithField("chars", n).Warn("Analysis too short")
			return fmt.Errorf("%w: %d chars, want at least %d", errRejectedAnalysis, n, s.opts.MinChars)
		}

		doc = parsed
		return nil
	})
	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			log.WithError(err).Error("Analysis generation exhausted its attempts")
			return Result{}, apperr.Generation("Failed to generate analysis", err)
		}
		return Result{}, err
	}

	log.WithField("sections", doc.Len()).Info("Generated analysis")
	return Result{
		SessionID:             state.ID,
		ThemeID:               in.ThemeID,
		Document:              doc,
		RemainingInteractions: s.opts.Budget.Remaining(in.InteractionCount),
	}, nil
}
