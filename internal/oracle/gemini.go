package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
)

type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiClient(ctx context.Context, cfg config.Oracle) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperr.Configuration("GOOGLE_API_KEY is not set", nil)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperr.Configuration("failed to create Gemini client", err)
	}

	return &GeminiClient{
		client:  client,
		model:   cfg.Model,
		timeout: config.Duration(cfg.Timeout, 45*time.Second),
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), params.generateConfig())
	if err != nil {
		log.WithError(err).Warn("Gemini generation failed")
		return "", classify(err)
	}

	raw := result.Text()
	log.WithField("elapsed", time.Since(start).String()).
		Debugf("Gemini raw response (%d chars)", len(raw))

	return raw, nil
}

// Verify checks that the configured key can see the model. It is meant to
// run once at startup so a bad credential stops the process.
func (c *GeminiClient) Verify(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.client.Models.Get(ctx, c.model, nil); err != nil {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", apperr.ErrOracleUnavailable, err)
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("oracle call failed: %w", err)
	}

	switch {
	case isCredentialError(apiErr):
		return apperr.Configuration("invalid oracle credential", err)
	case apiErr.Code == http.StatusTooManyRequests, apiErr.Code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", apperr.ErrOracleUnavailable, err)
	}
	return fmt.Errorf("oracle rejected request: %w", err)
}

func isCredentialError(e genai.APIError) bool {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		msg := strings.ToLower(e.Message)
		return strings.Contains(msg, "api key not valid") || strings.Contains(msg, "api_key_invalid")
	}
	return false
}
