package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/container"
	"github.com/saulo-duarte/persona-quiz/internal/ratelimit"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *opts)
		},
	}
}

// loadConfig reads the dotenv file and the YAML config, then validates.
func loadConfig(opts options) (config.Config, error) {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.port != "" {
		cfg.Server.Port = opts.port
	}
	config.InitLogger(cfg)
	return cfg, cfg.Validate()
}

func runServer(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log := config.Logger.WithField("env", cfg.App.Env)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, cleanup, err := container.Bootstrap(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.WithError(err).Warn("Cleanup failed")
		}
	}()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      c.Router(),
		ReadTimeout:  config.Duration(cfg.Server.ReadTimeout, 15*time.Second),
		WriteTimeout: config.Duration(cfg.Server.WriteTimeout, 90*time.Second),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", server.Addr).Info("Starting quiz server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if mem, ok := c.Limits.(*ratelimit.MemoryStore); ok {
		window := config.Duration(cfg.RateLimit.Window, time.Hour)
		g.Go(func() error {
			sweep(gctx, mem, window)
			return nil
		})
	}
	return g.Wait()
}

// sweep drops idle limiter keys once per window until ctx ends.
func sweep(ctx context.Context, store *ratelimit.MemoryStore, window time.Duration) {
	ticker := time.NewTicker(window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(window); n > 0 {
				config.Logger.WithField("keys", n).Debug("Swept idle rate limit keys")
			}
		}
	}
}
