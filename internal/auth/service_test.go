package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/troca-livros/backend/internal/apperr"
	"github.com/troca-livros/backend/internal/auth"
	"github.com/troca-livros/backend/internal/models"
	"github.com/troca-livros/backend/internal/store"
)

func validRegistration() models.RegisterRequest {
	return models.RegisterRequest{
		Name:                 "Ana",
		Email:                "ana@x.com",
		Password:             "p1",
		PasswordConfirmation: "p1",
		City:                 "SP",
		Neighborhood:         "Centro",
	}
}

func newService() *auth.Service {
	return auth.NewService(store.NewMemoryStore())
}

func TestRegister_ReturnsPublicProjection(t *testing.T) {
	svc := newService()

	user, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "ana@x.com", user.Email)
	assert.Equal(t, "SP", user.City)
	assert.Empty(t, user.Password, "public projection must not carry the password")
}

func TestRegister_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		wantMsg string
	}{
		{"missing name", func(r *models.RegisterRequest) { r.Name = "" }, "all fields required"},
		{"missing email", func(r *models.RegisterRequest) { r.Email = "" }, "all fields required"},
		{"missing password", func(r *models.RegisterRequest) { r.Password = "" }, "all fields required"},
		{"missing confirmation", func(r *models.RegisterRequest) { r.PasswordConfirmation = "" }, "all fields required"},
		{"missing city", func(r *models.RegisterRequest) { r.City = "" }, "all fields required"},
		{"missing neighborhood", func(r *models.RegisterRequest) { r.Neighborhood = "" }, "all fields required"},
		{"mismatched passwords", func(r *models.RegisterRequest) { r.PasswordConfirmation = "p2" }, "passwords do not match"},
		{"bad email format", func(r *models.RegisterRequest) { r.Email = "not-an-email" }, "invalid email format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService()
			req := validRegistration()
			tc.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.EqualError(t, err, tc.wantMsg)
		})
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	// same email, every other field different
	again := models.RegisterRequest{
		Name:                 "Outra Ana",
		Email:                "ana@x.com",
		Password:             "other",
		PasswordConfirmation: "other",
		City:                 "Rio",
		Neighborhood:         "Lapa",
	}
	_, err = svc.Register(ctx, again)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.EqualError(t, err, "email already registered")
}

func TestAuthenticate(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "ana@x.com", "p1")
		require.NoError(t, err)
		assert.Equal(t, "ana@x.com", user.Email)
		assert.Empty(t, user.Password)
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, pair := range [][2]string{{"", "p1"}, {"ana@x.com", ""}, {"", ""}} {
			_, err := svc.Authenticate(ctx, pair[0], pair[1])
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.EqualError(t, err, "email and password required")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@x.com", "p1")
		assert.True(t, apperr.IsAuth(err))
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ana@x.com", "P1")
		assert.True(t, apperr.IsAuth(err))
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("case-sensitive email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ANA@x.com", "p1")
		assert.True(t, apperr.IsAuth(err))
	})
}

func TestUserByID(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	user, err := svc.UserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, user.Email)

	_, err = svc.UserByID(ctx, 42)
	assert.True(t, apperr.IsNotFound(err))
}
