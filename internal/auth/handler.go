package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/troca-livros/backend/internal/api"
	"github.com/troca-livros/backend/internal/apperr"
	"github.com/troca-livros/backend/internal/models"
)

// Handler holds auth-related HTTP handlers.
type Handler struct {
	service  *Service
	sessions Sessions
}

func NewHandler(service *Service, sessions Sessions) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// Register creates a new user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.Success(w, http.StatusCreated, map[string]any{
		"mensagem": "Usuário registrado com sucesso",
		"usuario":  user,
	})
}

// Login authenticates a user and issues a session cookie. The response body
// carries the public user either way, so clients that ignore cookies keep
// working.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		api.Fail(w, err)
		return
	}

	sid, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		log.Printf("auth: create session: %v", err)
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(SessionTTL / time.Second),
		})
	}

	api.Success(w, http.StatusOK, map[string]any{
		"mensagem": "Login realizado com sucesso",
		"usuario":  user,
	})
}

// Logout destroys the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			log.Printf("auth: delete session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	api.Success(w, http.StatusOK, map[string]any{
		"mensagem": "Logout realizado com sucesso",
	})
}

// Me returns the currently authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r.Context())
	if userID == 0 {
		api.Fail(w, apperr.Auth("not authenticated"))
		return
	}

	user, err := h.service.UserByID(r.Context(), userID)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]any{"usuario": user})
}
