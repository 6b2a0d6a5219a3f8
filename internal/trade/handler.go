package trade

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// Request handles POST /api/request-trade.
func (h *Handler) Request(w http.ResponseWriter, r *http.Request) {
	var req models.RequestTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, apperr.Validation("invalid request body"))
		return
	}

	tr, err := h.service.Request(r.Context(), req.BookID, req.UserID)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.Success(w, http.StatusCreated, map[string]any{
		"mensagem":    "Solicitação de troca enviada com sucesso",
		"solicitacao": tr,
	})
}

// ListForOwner handles GET /api/trade-requests?usuarioId=<id>.
func (h *Handler) ListForOwner(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("usuarioId")
	if raw == "" {
		api.Fail(w, apperr.Validation("userId is required"))
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		api.Fail(w, apperr.Validation("userId is required"))
		return
	}

	list, err := h.service.ListForOwner(r.Context(), userID)
	if err != nil {
		api.Fail(w, err)
		return
	}
	if list == nil {
		list = []*models.TradeRequest{}
	}

	api.Success(w, http.StatusOK, map[string]any{"solicitacoes": list})
}
