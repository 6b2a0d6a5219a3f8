// Package api writes the JSON envelope the frontend expects: every response
// body is an object with a boolean `sucesso` plus either payload fields or a
// `mensagem` error string.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/troca-livros/backend/internal/apperr"
)

// Success writes status and a `{"sucesso": true, ...fields}` body.
func Success(w http.ResponseWriter, status int, fields map[string]any) {
	body := map[string]any{"sucesso": true}
	for k, v := range fields {
		body[k] = v
	}
	write(w, status, body)
}

// Fail maps err to an HTTP status and writes `{"sucesso": false, "mensagem": ...}`.
func Fail(w http.ResponseWriter, err error) {
	write(w, statusFor(err), map[string]any{
		"sucesso":  false,
		"mensagem": err.Error(),
	})
}

func statusFor(err error) int {
	switch kind, ok := apperr.KindOf(err); {
	case !ok:
		return http.StatusInternalServerError
	case kind == apperr.KindAuth:
		return http.StatusUnauthorized
	case kind == apperr.KindNotFound:
		return http.StatusNotFound
	default: // validation and conflict both surface as 400
		return http.StatusBadRequest
	}
}

func write(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}
