package points

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/troca-livros/backend/internal/api"
	"github.com/troca-livros/backend/internal/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ForUser handles GET /api/users/{id}/points.
func (h *Handler) ForUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Fail(w, apperr.Validation("userId is required"))
		return
	}

	total, err := h.service.ForUser(r.Context(), id)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]any{"pontos": total})
}
