// Package points scores user activity: 2 points per listed book, 5 per
// trade requested, 10 per trade accepted.
package points

import (
	"context"
	"errors"

	"github.com/troca-livros/backend/internal/apperr"
	"github.com/troca-livros/backend/internal/models"
	"github.com/troca-livros/backend/internal/store"
)

const (
	perBookListed     = 2
	perTradeRequested = 5
	perTradeAccepted  = 10
)

// Calculate returns the score for the given activity counts. Negative
// counts are rejected.
func Calculate(booksListed, tradesRequested, tradesAccepted int) (int, error) {
	if booksListed < 0 || tradesRequested < 0 || tradesAccepted < 0 {
		return 0, apperr.Validation("values must not be negative")
	}
	return booksListed*perBookListed +
		tradesRequested*perTradeRequested +
		tradesAccepted*perTradeAccepted, nil
}

// Store defines the lookups the points service derives its counts from.
type Store interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
	BooksByOwner(ctx context.Context, ownerID int64) ([]*models.Book, error)
	TradeRequestsByRequester(ctx context.Context, userID int64) ([]*models.TradeRequest, error)
}

// Service computes a user's score from the entity store.
type Service struct {
	store Store
}

func NewService(st Store) *Service {
	return &Service{store: st}
}

// ForUser returns the score of the user with the given id.
func (s *Service) ForUser(ctx context.Context, userID int64) (int, error) {
	if userID == 0 {
		return 0, apperr.Validation("userId is required")
	}
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, apperr.NotFound("user not found")
		}
		return 0, err
	}

	books, err := s.store.BooksByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}
	requests, err := s.store.TradeRequestsByRequester(ctx, userID)
	if err != nil {
		return 0, err
	}

	// Requests never leave pending today, so accepted stays zero unless a
	// transition is ever added.
	accepted := 0
	for _, tr := range requests {
		if tr.Status == "accepted" {
			accepted++
		}
	}

	return Calculate(len(books), len(requests), accepted)
}
