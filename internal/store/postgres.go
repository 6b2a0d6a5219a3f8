package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/troca-livros/backend/internal/models"
)

// PostgresStore is the persistent entity store engine. BIGSERIAL primary
// keys preserve the strictly-increasing id guarantee and `ORDER BY id`
// reproduces insertion order.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the three entity tables if they don't exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id           BIGSERIAL PRIMARY KEY,
			name         VARCHAR(255) NOT NULL,
			email        VARCHAR(255) UNIQUE NOT NULL,
			password     VARCHAR(255) NOT NULL,
			city         VARCHAR(255) NOT NULL,
			neighborhood VARCHAR(255) NOT NULL
		);
		CREATE TABLE IF NOT EXISTS books (
			id           BIGSERIAL PRIMARY KEY,
			title        VARCHAR(255) NOT NULL,
			author       VARCHAR(255) NOT NULL,
			owner_name   VARCHAR(255) NOT NULL,
			owner_id     BIGINT NOT NULL REFERENCES users(id),
			city         VARCHAR(255) NOT NULL,
			neighborhood VARCHAR(255) NOT NULL,
			description  TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS trade_requests (
			id              BIGSERIAL PRIMARY KEY,
			book_id         BIGINT NOT NULL REFERENCES books(id),
			requester_id    BIGINT NOT NULL REFERENCES users(id),
			requester_name  VARCHAR(255) NOT NULL,
			requester_email VARCHAR(255) NOT NULL,
			book_title      VARCHAR(255) NOT NULL,
			owner_id        BIGINT NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL,
			status          VARCHAR(32) NOT NULL
		)
	`)
	return err
}

func (s *PostgresStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	stored := *u
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password, city, neighborhood)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		u.Name, u.Email, u.Password, u.City, u.Neighborhood,
	).Scan(&stored.ID)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &stored, nil
}

func (s *PostgresStore) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT id, name, email, password, city, neighborhood FROM users WHERE id = $1`, id))
}

func (s *PostgresStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT id, name, email, password, city, neighborhood FROM users WHERE email = $1`, email))
}

func (s *PostgresStore) Users(ctx context.Context) ([]*models.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, password, city, neighborhood FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.City, &u.Neighborhood); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateBook(ctx context.Context, b *models.Book) (*models.Book, error) {
	stored := *b
	err := s.pool.QueryRow(ctx,
		`INSERT INTO books (title, author, owner_name, owner_id, city, neighborhood, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		b.Title, b.Author, b.OwnerName, b.OwnerID, b.City, b.Neighborhood, b.Description,
	).Scan(&stored.ID)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return &stored, nil
}

func (s *PostgresStore) BookByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, author, owner_name, owner_id, city, neighborhood, description
		 FROM books WHERE id = $1`, id,
	).Scan(&b.ID, &b.Title, &b.Author, &b.OwnerName, &b.OwnerID, &b.City, &b.Neighborhood, &b.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *PostgresStore) BooksByCity(ctx context.Context, city string) ([]*models.Book, error) {
	return s.queryBooks(ctx,
		`SELECT id, title, author, owner_name, owner_id, city, neighborhood, description
		 FROM books WHERE city = $1 ORDER BY id`, city)
}

func (s *PostgresStore) BooksByOwner(ctx context.Context, ownerID int64) ([]*models.Book, error) {
	return s.queryBooks(ctx,
		`SELECT id, title, author, owner_name, owner_id, city, neighborhood, description
		 FROM books WHERE owner_id = $1 ORDER BY id`, ownerID)
}

func (s *PostgresStore) CreateTradeRequest(ctx context.Context, tr *models.TradeRequest) (*models.TradeRequest, error) {
	stored := *tr
	err := s.pool.QueryRow(ctx,
		`INSERT INTO trade_requests
		   (book_id, requester_id, requester_name, requester_email, book_title, owner_id, created_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		tr.BookID, tr.RequesterID, tr.RequesterName, tr.RequesterEmail,
		tr.BookTitle, tr.OwnerID, tr.CreatedAt, tr.Status,
	).Scan(&stored.ID)
	if err != nil {
		return nil, fmt.Errorf("create trade request: %w", err)
	}
	return &stored, nil
}

// TradeRequestsForOwner joins through the books table so ownership is
// decided by the live book row, not the denormalized owner_id column.
func (s *PostgresStore) TradeRequestsForOwner(ctx context.Context, ownerID int64) ([]*models.TradeRequest, error) {
	return s.queryTrades(ctx,
		`SELECT tr.id, tr.book_id, tr.requester_id, tr.requester_name, tr.requester_email,
		        tr.book_title, tr.owner_id, tr.created_at, tr.status
		 FROM trade_requests tr
		 JOIN books b ON b.id = tr.book_id
		 WHERE b.owner_id = $1
		 ORDER BY tr.id`, ownerID)
}

func (s *PostgresStore) TradeRequestsByRequester(ctx context.Context, userID int64) ([]*models.TradeRequest, error) {
	return s.queryTrades(ctx,
		`SELECT id, book_id, requester_id, requester_name, requester_email,
		        book_title, owner_id, created_at, status
		 FROM trade_requests WHERE requester_id = $1 ORDER BY id`, userID)
}

func (s *PostgresStore) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.City, &u.Neighborhood)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) queryBooks(ctx context.Context, query string, arg any) ([]*models.Book, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.OwnerName, &b.OwnerID,
			&b.City, &b.Neighborhood, &b.Description); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

func (s *PostgresStore) queryTrades(ctx context.Context, query string, arg any) ([]*models.TradeRequest, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.TradeRequest
	for rows.Next() {
		var tr models.TradeRequest
		if err := rows.Scan(&tr.ID, &tr.BookID, &tr.RequesterID, &tr.RequesterName,
			&tr.RequesterEmail, &tr.BookTitle, &tr.OwnerID, &tr.CreatedAt, &tr.Status); err != nil {
			return nil, err
		}
		out = append(out, &tr)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
