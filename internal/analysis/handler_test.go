package analysis_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/persona-quiz/internal/analysis"
	"github.com/saulo-duarte/persona-quiz/internal/oracle/oracletest"
	"github.com/saulo-duarte/persona-quiz/internal/session"
	"github.com/saulo-duarte/persona-quiz/internal/theme"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func postAnalyze(t *testing.T, h *analysis.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	analysis.Routes(h).ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		h := analysis.NewHandler(newTestService(oracletest.Always(goodAnalysis)), session.NewBudget(3), nil, false)

		rec := postAnalyze(t, h, `{"answers":["a) Red","b) Blue"],"promptType":"PERSONALITY_ANALYSIS","interactionCount":0}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp analysis.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.RemainingInteractions)
		assert.Contains(t, resp.Analysis, "<h2>Core Traits</h2>")
		assert.Len(t, resp.Sections, 4)
		assert.Empty(t, resp.SessionToken, "tokens are off without a secret")
	})

	t.Run("IssuesSessionToken", func(t *testing.T) {
		tokens, err := session.NewTokens(testSecret)
		require.NoError(t, err)
		h := analysis.NewHandler(newTestService(oracletest.Always(goodAnalysis)), session.NewBudget(3), tokens, false)

		rec := postAnalyze(t, h, `{"answers":["a) Red"],"promptType":"SUPER_POWER","interactionCount":1}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp analysis.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.SessionToken)

		claims, ok, err := tokens.Read(resp.SessionToken)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, theme.SuperPower, claims.ThemeID)
		assert.Equal(t, 1, claims.InteractionCount)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		h := analysis.NewHandler(newTestService(oracletest.Always(goodAnalysis)), session.NewBudget(3), nil, false)

		rec := postAnalyze(t, h, `{not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp analysis.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "invalid request body", resp.Error)
	})

	t.Run("GenerationFailure", func(t *testing.T) {
		fake := oracletest.Always("nope")
		h := analysis.NewHandler(newTestService(fake), session.NewBudget(3), nil, false)

		rec := postAnalyze(t, h, `{"answers":["a) Red"],"promptType":"PERSONALITY_ANALYSIS","interactionCount":2}`)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp analysis.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, 1, resp.RemainingInteractions)
		assert.Empty(t, resp.Details)
		assert.NotContains(t, rec.Body.String(), "nope")
	})
}
