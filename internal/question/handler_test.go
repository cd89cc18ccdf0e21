package question_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/persona-quiz/internal/oracle/oracletest"
	"github.com/saulo-duarte/persona-quiz/internal/question"
)

func TestGetQuestionsHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		h := question.NewHandler(newTestService(oracletest.Always(quizText(10))), false)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?promptType=PERSONALITY_ANALYSIS", nil)
		question.Routes(h).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body []question.Question
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 10)
	})

	t.Run("BadRequest", func(t *testing.T) {
		h := question.NewHandler(newTestService(oracletest.Always(quizText(10))), false)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?promptType=CUSTOM", nil)
		question.Routes(h).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Custom prompt is required for custom quiz type", body["error"])
	})

	t.Run("ExhaustedHidesDetailsInProduction", func(t *testing.T) {
		h := question.NewHandler(newTestService(oracletest.Always(quizText(3))), false)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?promptType=SUPER_POWER", nil)
		question.Routes(h).ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
		assert.NotContains(t, body, "details")
	})

	t.Run("DevelopmentIncludesDetails", func(t *testing.T) {
		h := question.NewHandler(newTestService(oracletest.Always(quizText(3))), true)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?promptType=SUPER_POWER", nil)
		question.Routes(h).ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["details"], "got 3 questions")
	})
}
