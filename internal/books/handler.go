package books

import (
	"encoding/json"
	"net/http"

	"github.com/troca-livros/backend/internal/api"
	"github.com/troca-livros/backend/internal/apperr"
	"github.com/troca-livros/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Add handles POST /api/books.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, apperr.Validation("invalid request body"))
		return
	}

	book, err := h.service.AddBook(r.Context(), req)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.Success(w, http.StatusCreated, map[string]any{
		"mensagem": "Livro cadastrado com sucesso",
		"livro":    book,
	})
}

// ListByCity handles GET /api/books?cidade=<cidade>.
func (h *Handler) ListByCity(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListByCity(r.Context(), r.URL.Query().Get("cidade"))
	if err != nil {
		api.Fail(w, err)
		return
	}
	if list == nil {
		list = []*models.Book{}
	}

	api.Success(w, http.StatusOK, map[string]any{"livros": list})
}
