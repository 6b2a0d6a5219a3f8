// Package books implements the book catalog: registering a book under an
// owner and the by-city directory query.
package books

import (
	"context"
	"errors"

	"github.com/troca-livros/backend/internal/apperr"
	"github.com/troca-livros/backend/internal/models"
	"github.com/troca-livros/backend/internal/store"
)

// Store defines the persistence operations the catalog needs.
type Store interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
	CreateBook(ctx context.Context, b *models.Book) (*models.Book, error)
	BooksByCity(ctx context.Context, city string) ([]*models.Book, error)
}

// Service implements the book catalog.
type Service struct {
	store Store
}

func NewService(st Store) *Service {
	return &Service{store: st}
}

// AddBook stores a new book under ownerID. The owner's name, city and
// neighborhood are copied onto the book at this instant and never re-synced.
func (s *Service) AddBook(ctx context.Context, req models.AddBookRequest) (*models.Book, error) {
	if req.Title == "" || req.Author == "" || req.Description == "" || req.OwnerID == 0 {
		return nil, apperr.Validation("title, author, description and ownerId are required")
	}

	owner, err := s.store.UserByID(ctx, req.OwnerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("owner not found")
	}
	if err != nil {
		return nil, err
	}

	return s.store.CreateBook(ctx, &models.Book{
		Title:        req.Title,
		Author:       req.Author,
		OwnerName:    owner.Name,
		OwnerID:      owner.ID,
		City:         owner.City,
		Neighborhood: owner.Neighborhood,
		Description:  req.Description,
	})
}

// ListByCity returns every book in the given city, in insertion order, with
// no owner filtering; callers build "available to trade" and "my books"
// views from the same result. An empty result is not an error.
func (s *Service) ListByCity(ctx context.Context, city string) ([]*models.Book, error) {
	if city == "" {
		return nil, apperr.Validation("city is required")
	}
	return s.store.BooksByCity(ctx, city)
}
