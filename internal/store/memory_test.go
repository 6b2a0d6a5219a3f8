package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/troca-livros/backend/internal/models"
	"github.com/troca-livros/backend/internal/store"
)

func newUser(email string) *models.User {
	return &models.User{
		Name:         "Test User",
		Email:        email,
		Password:     "secret",
		City:         "SP",
		Neighborhood: "Centro",
	}
}

func TestCreateUser_AssignsStrictlyIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	var last int64
	for i := 0; i < 5; i++ {
		u, err := s.CreateUser(ctx, newUser(fmt.Sprintf("u%d@x.com", i)))
		require.NoError(t, err)
		assert.Greater(t, u.ID, last)
		last = u.ID
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	_, err := s.CreateUser(ctx, newUser("dup@x.com"))
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, newUser("dup@x.com"))
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestCreateUser_ConcurrentDuplicatesAdmitOne(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateUser(ctx, newUser("race@x.com"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, store.ErrDuplicateEmail)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	created, err := s.CreateUser(ctx, newUser("ana@x.com"))
	require.NoError(t, err)

	byID, err := s.UserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byEmail, err := s.UserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	_, err = s.UserByID(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.UserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBooksByCity_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	for i, city := range []string{"SP", "Rio", "SP", "SP"} {
		_, err := s.CreateBook(ctx, &models.Book{Title: fmt.Sprintf("B%d", i), City: city, OwnerID: 1})
		require.NoError(t, err)
	}

	sp, err := s.BooksByCity(ctx, "SP")
	require.NoError(t, err)
	require.Len(t, sp, 3)
	assert.Equal(t, "B0", sp[0].Title)
	assert.Equal(t, "B2", sp[1].Title)
	assert.Equal(t, "B3", sp[2].Title)

	empty, err := s.BooksByCity(ctx, "sp") // case-sensitive
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTradeRequestsForOwner_JoinsThroughBooks(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	mine, err := s.CreateBook(ctx, &models.Book{Title: "Mine", OwnerID: 1})
	require.NoError(t, err)
	theirs, err := s.CreateBook(ctx, &models.Book{Title: "Theirs", OwnerID: 2})
	require.NoError(t, err)

	_, err = s.CreateTradeRequest(ctx, &models.TradeRequest{BookID: mine.ID, RequesterID: 3, OwnerID: 1})
	require.NoError(t, err)
	_, err = s.CreateTradeRequest(ctx, &models.TradeRequest{BookID: theirs.ID, RequesterID: 3, OwnerID: 2})
	require.NoError(t, err)
	// dangling book reference must be filtered out, not error
	_, err = s.CreateTradeRequest(ctx, &models.TradeRequest{BookID: 999, RequesterID: 3, OwnerID: 1})
	require.NoError(t, err)

	forOne, err := s.TradeRequestsForOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, forOne, 1)
	assert.Equal(t, mine.ID, forOne[0].BookID)

	byRequester, err := s.TradeRequestsByRequester(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, byRequester, 3)
}

func TestSeed_LoadsSampleDataOnce(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	require.NoError(t, store.Seed(ctx, s))
	require.NoError(t, store.Seed(ctx, s), "seeding twice must be a no-op")

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "joao@example.com", users[0].Email)
	assert.Equal(t, "maria@example.com", users[1].Email)

	booksSP, err := s.BooksByCity(ctx, "São Paulo")
	require.NoError(t, err)
	assert.Len(t, booksSP, 4)

	// counters continue above the seeded entities
	u, err := s.CreateUser(ctx, newUser("third@x.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)

	b, err := s.CreateBook(ctx, &models.Book{Title: "Fifth", OwnerID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(5), b.ID)
}

func TestSeed_DenormalizesOwnerFields(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, store.Seed(ctx, s))

	books, err := s.BooksByCity(ctx, "São Paulo")
	require.NoError(t, err)
	for _, b := range books {
		owner, err := s.UserByID(ctx, b.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, owner.Name, b.OwnerName)
		assert.Equal(t, owner.City, b.City)
		assert.Equal(t, owner.Neighborhood, b.Neighborhood)
	}
}
