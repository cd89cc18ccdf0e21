package analysis

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/session"
)

type Handler struct {
	service Service
	budget  session.Budget
	tokens  *session.Tokens
	devMode bool
}

func NewHandler(s Service, budget session.Budget, tokens *session.Tokens, devMode bool) *Handler {
	return &Handler{service: s, budget: budget, tokens: tokens, devMode: devMode}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, apperr.Validation("invalid request body"), 0)
		return
	}

	result, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		if apperr.Status(err) >= http.StatusInternalServerError {
			log.WithError(err).Errorf("Failed to analyze answers for %q", req.PromptType)
		} else {
			log.WithError(err).Warn("Rejected analysis request")
		}
		h.fail(w, err, req.InteractionCount)
		return
	}

	rendered, err := result.Document.HTML()
	if err != nil {
		log.WithError(err).Error("Failed to render analysis")
		h.fail(w, err, req.InteractionCount)
		return
	}

	token, err := h.tokens.Issue(session.Claims{
		ID:               result.SessionID,
		ThemeID:          result.ThemeID,
		InteractionCount: max(req.InteractionCount, 0),
	})
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		h.fail(w, err, req.InteractionCount)
		return
	}

	config.JSON(w, http.StatusOK, Response{
		Analysis:              rendered,
		Sections:              result.Document.Sections,
		RemainingInteractions: result.RemainingInteractions,
		Success:               true,
		SessionToken:          token,
	})
}

func (h *Handler) fail(w http.ResponseWriter, err error, count int) {
	resp := ErrorResponse{
		Error:                 apperr.PublicMessage(err),
		RemainingInteractions: h.budget.Remaining(count),
	}
	if h.devMode {
		resp.Details = err.Error()
	}
	config.JSON(w, apperr.Status(err), resp)
}
