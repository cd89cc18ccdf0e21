package oracle

import (
	"context"

	"google.golang.org/genai"

	"github.com/saulo-duarte/persona-quiz/internal/config"
)

// Client sends a prompt to the generative-language service and returns its
// raw text. Implementations may fail or return malformed text.
type Client interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}

// Params are the sampling settings of one call. A non-nil Schema asks the
// service for JSON output matching it.
type Params struct {
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
	Schema          *genai.Schema
}

func ParamsFrom(s config.Sampling) Params {
	return Params{
		Temperature:     s.Temperature,
		TopK:            s.TopK,
		TopP:            s.TopP,
		MaxOutputTokens: s.MaxOutputTokens,
	}
}

func (p Params) generateConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: p.MaxOutputTokens,
	}
	if p.Temperature > 0 {
		cfg.Temperature = genai.Ptr(p.Temperature)
	}
	if p.TopK > 0 {
		cfg.TopK = genai.Ptr(p.TopK)
	}
	if p.TopP > 0 {
		cfg.TopP = genai.Ptr(p.TopP)
	}
	if p.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = p.Schema
	}
	return cfg
}
