package oracle

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
)

func TestClassify(t *testing.T) {
	t.Run("Unavailable", func(t *testing.T) {
		for _, code := range []int{429, 500, 503} {
			err := classify(genai.APIError{Code: code, Message: "try later"})
			assert.ErrorIs(t, err, apperr.ErrOracleUnavailable, "code %d", code)
			assert.True(t, apperr.Retryable(err))
		}
	})

	t.Run("Credential", func(t *testing.T) {
		for _, e := range []genai.APIError{
			{Code: 401},
			{Code: 403, Message: "permission denied"},
			{Code: 400, Message: "API key not valid. Please pass a valid API key."},
		} {
			err := classify(e)
			var cfgErr *apperr.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.False(t, apperr.Retryable(err))
		}
	})

	t.Run("WrappedAPIError", func(t *testing.T) {
		err := classify(fmt.Errorf("transport: %w", genai.APIError{Code: 503}))
		assert.ErrorIs(t, err, apperr.ErrOracleUnavailable)
	})

	t.Run("Deadline", func(t *testing.T) {
		assert.ErrorIs(t, classify(context.DeadlineExceeded), apperr.ErrOracleUnavailable)
	})

	t.Run("Canceled", func(t *testing.T) {
		err := classify(context.Canceled)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, apperr.Retryable(err))
	})

	t.Run("Other", func(t *testing.T) {
		err := classify(errors.New("dial tcp: no route"))
		assert.NotErrorIs(t, err, apperr.ErrOracleUnavailable)
		assert.True(t, apperr.Retryable(err))
	})
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), config.Oracle{})

	var cfgErr *apperr.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParamsGenerateConfig(t *testing.T) {
	p := ParamsFrom(config.Sampling{Temperature: 0.9, TopK: 40, TopP: 0.95, MaxOutputTokens: 2048})
	cfg := p.generateConfig()

	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.9, *cfg.Temperature, 0.0001)
	require.NotNil(t, cfg.TopK)
	assert.InDelta(t, 40, *cfg.TopK, 0.0001)
	assert.Equal(t, int32(2048), cfg.MaxOutputTokens)
	assert.Empty(t, cfg.ResponseMIMEType)

	p.Schema = &genai.Schema{Type: genai.TypeArray}
	cfg = p.generateConfig()
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	assert.Same(t, p.Schema, cfg.ResponseSchema)

	assert.Nil(t, Params{}.generateConfig().Temperature)
}
