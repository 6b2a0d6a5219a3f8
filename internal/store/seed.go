package store

import (
	"context"
	"errors"

	"github.com/troca-livros/backend/internal/models"
)

// Seeder is the subset of store operations seeding needs; both engines
// satisfy it.
type Seeder interface {
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	CreateBook(ctx context.Context, b *models.Book) (*models.Book, error)
}

// Seed loads the sample users and books the original service shipped with.
// Seeding is idempotent: if the first sample user already exists, the store
// is assumed seeded and nothing is written. Id counters continue above the
// seeded entities.
func Seed(ctx context.Context, s Seeder) error {
	joao, err := s.CreateUser(ctx, &models.User{
		Name:         "João Silva",
		Email:        "joao@example.com",
		Password:     "123456",
		City:         "São Paulo",
		Neighborhood: "Vila Mariana",
	})
	if errors.Is(err, ErrDuplicateEmail) {
		return nil
	}
	if err != nil {
		return err
	}

	maria, err := s.CreateUser(ctx, &models.User{
		Name:         "Maria Santos",
		Email:        "maria@example.com",
		Password:     "123456",
		City:         "São Paulo",
		Neighborhood: "Pinheiros",
	})
	if err != nil {
		return err
	}

	books := []*models.Book{
		{Title: "Dom Casmurro", Author: "Machado de Assis", Description: "Clássico da literatura brasileira", OwnerID: joao.ID},
		{Title: "1984", Author: "George Orwell", Description: "Ficção científica distópica", OwnerID: maria.ID},
		{Title: "O Cortiço", Author: "Aluísio Azevedo", Description: "Romance naturalista brasileiro", OwnerID: joao.ID},
		{Title: "O Pequeno Príncipe", Author: "Antoine de Saint-Exupéry", Description: "Fábula poética para todas as idades", OwnerID: maria.ID},
	}
	owners := map[int64]*models.User{joao.ID: joao, maria.ID: maria}

	for _, b := range books {
		owner := owners[b.OwnerID]
		b.OwnerName = owner.Name
		b.City = owner.City
		b.Neighborhood = owner.Neighborhood
		if _, err := s.CreateBook(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
