package auth

import (
	"context"
	"errors"

	"github.com/troca-livros/backend/internal/apperr"
	"github.com/troca-livros/backend/internal/models"
	"github.com/troca-livros/backend/internal/store"
)

// UserStore defines the persistence operations the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

// Service implements registration and authentication.
type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// Register validates the request and stores a new user. Validation fails
// fast in a fixed order: required fields, password confirmation, email
// format; the duplicate-email check happens atomically at insert. Returns
// the public projection of the stored user.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" ||
		req.PasswordConfirmation == "" || req.City == "" || req.Neighborhood == "" {
		return nil, apperr.Validation("all fields required")
	}
	if req.Password != req.PasswordConfirmation {
		return nil, apperr.Validation("passwords do not match")
	}
	if !ValidEmail(req.Email) {
		return nil, apperr.Validation("invalid email format")
	}

	user, err := s.users.CreateUser(ctx, &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		City:         req.City,
		Neighborhood: req.Neighborhood,
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		return nil, apperr.Conflict("email already registered")
	}
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// Authenticate verifies credentials by exact email lookup and plain password
// equality, matching the original service's behavior. Returns the public
// projection on success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password required")
	}

	user, err := s.users.UserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.Auth("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, apperr.Auth("invalid credentials")
	}
	return user.Public(), nil
}

// UserByID returns the public projection of the user with the given id.
func (s *Service) UserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.UserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}
