package store

import (
	"context"
	"sync"

	"github.com/troca-livros/backend/internal/models"
)

// MemoryStore keeps all entities in process memory, guarded by a single
// RWMutex so validate-then-insert sequences stay atomic per store. State is
// lost on restart, matching the original service.
type MemoryStore struct {
	mu sync.RWMutex

	users        []*models.User
	usersByID    map[int64]*models.User
	usersByEmail map[string]*models.User
	nextUserID   int64

	books      []*models.Book
	booksByID  map[int64]*models.Book
	nextBookID int64

	trades      []*models.TradeRequest
	nextTradeID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		usersByID:    make(map[int64]*models.User),
		usersByEmail: make(map[string]*models.User),
		booksByID:    make(map[int64]*models.Book),
		nextUserID:   1,
		nextBookID:   1,
		nextTradeID:  1,
	}
}

// CreateUser assigns the next user id and stores u. The email uniqueness
// check happens under the write lock so two concurrent registrations with
// the same email cannot both succeed.
func (s *MemoryStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usersByEmail[u.Email]; taken {
		return nil, ErrDuplicateEmail
	}

	stored := *u
	stored.ID = s.nextUserID
	s.nextUserID++

	s.users = append(s.users, &stored)
	s.usersByID[stored.ID] = &stored
	s.usersByEmail[stored.Email] = &stored
	return &stored, nil
}

func (s *MemoryStore) UserByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

// Users returns every user in insertion order.
func (s *MemoryStore) Users(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// CreateBook assigns the next book id and stores b.
func (s *MemoryStore) CreateBook(ctx context.Context, b *models.Book) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *b
	stored.ID = s.nextBookID
	s.nextBookID++

	s.books = append(s.books, &stored)
	s.booksByID[stored.ID] = &stored
	return &stored, nil
}

func (s *MemoryStore) BookByID(ctx context.Context, id int64) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.booksByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

// BooksByCity returns books whose city matches exactly (case-sensitive), in
// insertion order. An empty result is not an error.
func (s *MemoryStore) BooksByCity(ctx context.Context, city string) ([]*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Book
	for _, b := range s.books {
		if b.City == city {
			out = append(out, b)
		}
	}
	return out, nil
}

// BooksByOwner returns books owned by ownerID, in insertion order.
func (s *MemoryStore) BooksByOwner(ctx context.Context, ownerID int64) ([]*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Book
	for _, b := range s.books {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

// CreateTradeRequest assigns the next trade request id and stores tr.
func (s *MemoryStore) CreateTradeRequest(ctx context.Context, tr *models.TradeRequest) (*models.TradeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *tr
	stored.ID = s.nextTradeID
	s.nextTradeID++

	s.trades = append(s.trades, &stored)
	return &stored, nil
}

// TradeRequestsForOwner returns every request whose book currently resolves
// to a book owned by ownerID, in insertion order. The filter re-resolves the
// book instead of trusting the request's denormalized owner field.
func (s *MemoryStore) TradeRequestsForOwner(ctx context.Context, ownerID int64) ([]*models.TradeRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.TradeRequest
	for _, tr := range s.trades {
		b, ok := s.booksByID[tr.BookID]
		if ok && b.OwnerID == ownerID {
			out = append(out, tr)
		}
	}
	return out, nil
}

// TradeRequestsByRequester returns every request created by userID, in
// insertion order.
func (s *MemoryStore) TradeRequestsByRequester(ctx context.Context, userID int64) ([]*models.TradeRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.TradeRequest
	for _, tr := range s.trades {
		if tr.RequesterID == userID {
			out = append(out, tr)
		}
	}
	return out, nil
}
