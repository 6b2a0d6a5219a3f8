// Package server assembles the HTTP router from the service handlers.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/troca-livros/backend/internal/auth"
	"github.com/troca-livros/backend/internal/books"
	"github.com/troca-livros/backend/internal/middleware"
	"github.com/troca-livros/backend/internal/points"
	"github.com/troca-livros/backend/internal/trade"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Auth           *auth.Handler
	Books          *books.Handler
	Trades         *trade.Handler
	Points         *points.Handler
	Sessions       auth.Sessions
	AllowedOrigins []string
}

// New builds the chi router with the standard middleware stack and all API
// routes under /api.
func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", d.Auth.Register)
		r.Post("/login", d.Auth.Login)
		r.Post("/logout", d.Auth.Logout)
		r.With(middleware.RequireAuth(d.Sessions)).Get("/me", d.Auth.Me)

		r.Get("/books", d.Books.ListByCity)
		r.Post("/books", d.Books.Add)

		r.Post("/request-trade", d.Trades.Request)
		r.Get("/trade-requests", d.Trades.ListForOwner)

		r.Get("/users/{id}/points", d.Points.ForUser)
	})

	return r
}
