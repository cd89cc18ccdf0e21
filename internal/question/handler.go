package question

import (
	"net/http"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
)

type Handler struct {
	service Service
	devMode bool
}

func NewHandler(s Service, devMode bool) *Handler {
	return &Handler{service: s, devMode: devMode}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	req := Request{
		PromptType:   r.URL.Query().Get("promptType"),
		CustomPrompt: r.URL.Query().Get("customPrompt"),
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		status := apperr.Status(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).Errorf("Failed to generate questions for %q", req.PromptType)
		} else {
			log.WithError(err).Warn("Rejected questions request")
		}

		resp := errorResponse{Error: apperr.PublicMessage(err)}
		if h.devMode {
			resp.Details = err.Error()
		}
		config.JSON(w, status, resp)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}
