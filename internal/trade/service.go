// Package trade implements the trade request workflow. A request is created
// pending and stays pending: the service exposes no accept/reject
// transition, matching the behavior of the system it replaces.
package trade

import (
	"context"
	"errors"
	"time"

	"github.com/troca-livros/backend/internal/apperr"
	"github.com/troca-livros/backend/internal/models"
	"github.com/troca-livros/backend/internal/store"
)

// Store defines the persistence operations the workflow needs.
type Store interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
	BookByID(ctx context.Context, id int64) (*models.Book, error)
	CreateTradeRequest(ctx context.Context, tr *models.TradeRequest) (*models.TradeRequest, error)
	TradeRequestsForOwner(ctx context.Context, ownerID int64) ([]*models.TradeRequest, error)
}

// Service implements the trade request workflow.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(st Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Request creates a pending trade request from requesterID against bookID.
// Validation order: ids present, book resolves, requester resolves, requester
// is not the book's owner. Requester and book fields are copied onto the
// request at creation.
func (s *Service) Request(ctx context.Context, bookID, requesterID int64) (*models.TradeRequest, error) {
	if bookID == 0 || requesterID == 0 {
		return nil, apperr.Validation("book id and user id are required")
	}

	book, err := s.store.BookByID(ctx, bookID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("book not found")
	}
	if err != nil {
		return nil, err
	}

	requester, err := s.store.UserByID(ctx, requesterID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}

	if book.OwnerID == requester.ID {
		return nil, apperr.Conflict("cannot request trade on your own book")
	}

	return s.store.CreateTradeRequest(ctx, &models.TradeRequest{
		BookID:         book.ID,
		RequesterID:    requester.ID,
		RequesterName:  requester.Name,
		RequesterEmail: requester.Email,
		BookTitle:      book.Title,
		OwnerID:        book.OwnerID,
		CreatedAt:      s.now(),
		Status:         models.TradeStatusPending,
	})
}

// ListForOwner returns every request addressed to userID's books, in
// insertion order. Ownership is decided by re-resolving each request's book,
// not by the request's denormalized owner field. An empty result is not an
// error.
func (s *Service) ListForOwner(ctx context.Context, userID int64) ([]*models.TradeRequest, error) {
	if userID == 0 {
		return nil, apperr.Validation("userId is required")
	}
	return s.store.TradeRequestsForOwner(ctx, userID)
}
