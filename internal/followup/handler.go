package followup

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

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

func (h *Handler) FollowUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := config.WithContext(ctx)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, apperr.Validation("invalid request body"), 0)
		return
	}

	claims, signed, err := h.tokens.Read(req.SessionToken)
	if err != nil {
		log.WithError(err).Warn("Rejected session token")
		h.fail(w, apperr.Validation("invalid session token"), req.InteractionCount)
		return
	}
	count := session.EffectiveCount(req.InteractionCount, claims, signed)
	if signed {
		ctx = config.WithSessionID(ctx, claims.ID.String())
		log = config.WithContext(ctx)
	}

	result, err := h.service.Answer(ctx, Input{
		PreviousAnalysis: req.PreviousAnalysis,
		Question:         req.Question,
		InteractionCount: count,
	})
	if err != nil {
		if apperr.Status(err) >= http.StatusInternalServerError {
			log.WithError(err).Error("Failed to answer follow-up")
		} else {
			log.WithError(err).Warn("Rejected follow-up request")
		}
		h.fail(w, err, count)
		return
	}

	rendered, err := result.Document.HTML()
	if err != nil {
		log.WithError(err).Error("Failed to render follow-up answer")
		h.fail(w, err, count)
		return
	}

	token, err := h.refreshToken(claims, signed, count)
	if err != nil {
		log.WithError(err).Error("Failed to refresh session token")
		h.fail(w, err, count)
		return
	}

	config.JSON(w, http.StatusOK, Response{
		Answer:                rendered,
		Sections:              result.Document.Sections,
		RemainingInteractions: result.RemainingInteractions,
		Success:               true,
		SessionToken:          token,
	})
}

// refreshToken signs the count after this follow-up. Requests that came
// without a token get one too, so later calls are bound to it.
func (h *Handler) refreshToken(claims session.Claims, signed bool, count int) (string, error) {
	if !h.tokens.Enabled() {
		return "", nil
	}
	if !signed {
		claims.ID = uuid.New()
	}
	state := session.State{ID: claims.ID, ThemeID: claims.ThemeID, InteractionCount: count}
	if err := state.RecordFollowUp(h.budget); err != nil {
		return "", err
	}
	return h.tokens.Issue(session.Claims{
		ID:               state.ID,
		ThemeID:          state.ThemeID,
		InteractionCount: state.InteractionCount,
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

// RateLimited answers requests turned away by the per-IP limiter in the
// same shape as an exhausted budget.
func (h *Handler) RateLimited(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusTooManyRequests, ErrorResponse{
		Error:                 "Too many requests, please try again later.",
		RemainingInteractions: 0,
		Success:               false,
	})
}
