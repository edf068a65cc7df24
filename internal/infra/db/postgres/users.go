package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStore does the credential lookup for login. Passwords are stored and
// compared as plain text, same as the rest of this system expects.
type UserStore struct {
	db *DB
}

func NewUserStore(db *DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) Authenticate(ctx context.Context, username, password string) (int64, error) {
	var id int64
	err := s.db.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE username = $1 AND password = $2`,
		username, password).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrInvalidCredentials
	}
	if err != nil {
		return 0, fmt.Errorf("authenticate %s: %w", username, err)
	}
	return id, nil
}
