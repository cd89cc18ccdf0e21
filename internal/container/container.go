package container

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/persona-quiz/internal/analysis"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/followup"
	"github.com/saulo-duarte/persona-quiz/internal/oracle"
	"github.com/saulo-duarte/persona-quiz/internal/question"
	"github.com/saulo-duarte/persona-quiz/internal/ratelimit"
	"github.com/saulo-duarte/persona-quiz/internal/router"
	"github.com/saulo-duarte/persona-quiz/internal/session"
	"github.com/saulo-duarte/persona-quiz/internal/theme"
)

type Container struct {
	Config config.Config
	Oracle oracle.Client
	Themes *theme.Registry
	Tokens *session.Tokens
	Limits ratelimit.Store

	ThemeHandler      *theme.Handler
	QuestionContainer *question.QuestionContainer
	AnalysisContainer *analysis.AnalysisContainer
	FollowUpContainer *followup.FollowUpContainer
}

// New wires every feature around client and store. A nil store disables
// the per-IP limiter.
func New(cfg config.Config, client oracle.Client, store ratelimit.Store) (*Container, error) {
	tokens, err := session.NewTokens(cfg.Session.Secret)
	if err != nil {
		return nil, err
	}
	themes := theme.NewRegistry()

	return &Container{
		Config:            cfg,
		Oracle:            client,
		Themes:            themes,
		Tokens:            tokens,
		Limits:            store,
		ThemeHandler:      theme.NewHandler(themes),
		QuestionContainer: question.NewQuestionContainer(cfg, client, themes),
		AnalysisContainer: analysis.NewAnalysisContainer(cfg, client, themes, tokens),
		FollowUpContainer: followup.NewFollowUpContainer(cfg, client, tokens),
	}, nil
}

// Bootstrap builds the production container: the Gemini client and a Redis
// limiter when redis.addr is set, an in-memory one otherwise. The returned
// func releases what Bootstrap opened.
func Bootstrap(ctx context.Context, cfg config.Config) (*Container, func() error, error) {
	log := config.WithContext(ctx)

	gemini, err := oracle.NewGeminiClient(ctx, cfg.Oracle)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Oracle.VerifyOnStart {
		if err := gemini.Verify(ctx); err != nil {
			return nil, nil, err
		}
		log.WithField("model", cfg.Oracle.Model).Info("Oracle credentials verified")
	}

	var (
		store   ratelimit.Store
		cleanup = func() error { return nil }
	)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = ratelimit.NewRedisStore(client, "persona-quiz:ratelimit:")
		cleanup = client.Close
		log.WithField("addr", cfg.Redis.Addr).Info("Using Redis rate limit store")
	} else {
		store = ratelimit.NewMemoryStore()
	}

	c, err := New(cfg, gemini, store)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return c, cleanup, nil
}

func (c *Container) Router() *chi.Mux {
	var limiter func(http.Handler) http.Handler
	if c.Limits != nil && c.Config.RateLimit.Requests > 0 {
		limiter = ratelimit.Middleware(
			c.Limits,
			c.Config.RateLimit.Requests,
			config.Duration(c.Config.RateLimit.Window, time.Hour),
			c.FollowUpContainer.Handler.RateLimited,
		)
	}

	return router.New(router.RouterConfig{
		ThemeHandler:    c.ThemeHandler,
		QuestionHandler: c.QuestionContainer.Handler,
		AnalysisHandler: c.AnalysisContainer.Handler,
		FollowUpHandler: c.FollowUpContainer.Handler,
		FollowUpLimiter: limiter,
		AllowedOrigins:  c.Config.Server.AllowedOrigins,
		StaticDir:       c.Config.Server.StaticDir,
	})
}
