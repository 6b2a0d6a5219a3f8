// Package store holds the entity store engines. The memory engine is the
// default and matches the original in-memory semantics; the Postgres engine
// is an opt-in persistence enhancement selected via POSTGRES_DSN. Both keep
// the same guarantees: per-entity strictly increasing ids, insertion-order
// listings, no updates and no deletes.
package store

import (
	"context"
	"errors"

	"github.com/troca-livros/backend/internal/models"
)

// Engine is the full entity-store surface; each service depends on its own
// narrow subset, this union exists for wiring in main.
type Engine interface {
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	Users(ctx context.Context) ([]*models.User, error)

	CreateBook(ctx context.Context, b *models.Book) (*models.Book, error)
	BookByID(ctx context.Context, id int64) (*models.Book, error)
	BooksByCity(ctx context.Context, city string) ([]*models.Book, error)
	BooksByOwner(ctx context.Context, ownerID int64) ([]*models.Book, error)

	CreateTradeRequest(ctx context.Context, tr *models.TradeRequest) (*models.TradeRequest, error)
	TradeRequestsForOwner(ctx context.Context, ownerID int64) ([]*models.TradeRequest, error)
	TradeRequestsByRequester(ctx context.Context, userID int64) ([]*models.TradeRequest, error)
}

var (
	// ErrNotFound is returned when an id resolves to no entity.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateEmail is returned by CreateUser when the email is taken.
	// The uniqueness check and the insert are atomic in every engine.
	ErrDuplicateEmail = errors.New("store: email already registered")
)
