package auth

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	SessionTTL    = 24 * time.Hour
	SessionCookie = "session_id"
)

type ctxKey string

// UserIDKey is the request-context key RequireAuth stores the session's
// user id under.
const UserIDKey ctxKey = "user_id"

// UserIDFrom returns the authenticated user id from ctx, or 0 if absent.
func UserIDFrom(ctx context.Context) int64 {
	id, _ := ctx.Value(UserIDKey).(int64)
	return id
}

// Sessions maps opaque session ids to user ids.
type Sessions interface {
	Create(ctx context.Context, userID int64) (string, error)
	// Get returns the user id for a session, or 0 if not found / expired.
	Get(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessions stores sessions in Redis, for deployments where restarts
// should not drop logins.
type RedisSessions struct {
	rdb *redis.Client
}

func NewRedisSessions(rdb *redis.Client) *RedisSessions {
	return &RedisSessions{rdb: rdb}
}

func (s *RedisSessions) Create(ctx context.Context, userID int64) (string, error) {
	sid := uuid.New().String()
	err := s.rdb.Set(ctx, "session:"+sid, strconv.FormatInt(userID, 10), SessionTTL).Err()
	return sid, err
}

func (s *RedisSessions) Get(ctx context.Context, sessionID string) (int64, error) {
	val, err := s.rdb.Get(ctx, "session:"+sessionID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (s *RedisSessions) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, "session:"+sessionID).Err()
}

type memorySession struct {
	userID    int64
	expiresAt time.Time
}

// MemorySessions is the in-process session store used when no Redis address
// is configured. Sessions expire lazily on read.
type MemorySessions struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: make(map[string]memorySession)}
}

func (s *MemorySessions) Create(ctx context.Context, userID int64) (string, error) {
	sid := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = memorySession{userID: userID, expiresAt: time.Now().Add(SessionTTL)}
	return sid, nil
}

func (s *MemorySessions) Get(ctx context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return 0, nil
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return 0, nil
	}
	return sess.userID, nil
}

func (s *MemorySessions) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
