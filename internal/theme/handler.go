package theme

import (
	"net/http"

	"github.com/saulo-duarte/persona-quiz/internal/config"
)

type Handler struct {
	registry *Registry
}

func NewHandler(r *Registry) *Handler {
	return &Handler{registry: r}
}

func (h *Handler) ListPromptTypes(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.registry.All())
}
