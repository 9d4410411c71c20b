package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/artem13815/resumeboost/pkg/auth"
)

// timestamps are stored as fixed-width RFC 3339 text in UTC so that they
// sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// UserRepository implements auth.UserRepository on SQLite.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, username, password, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, user.Email, user.Username, user.Password, user.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		if isUniqueViolation(err) {
			return auth.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, username, password, created_at
		FROM users WHERE email = ?
	`, email)
	var user auth.User
	var createdAt string
	if err := row.Scan(&user.ID, &user.Email, &user.Username, &user.Password, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return auth.User{}, fmt.Errorf("parse created_at: %w", err)
	}
	user.CreatedAt = t.UTC()
	return user, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

var _ auth.UserRepository = (*UserRepository)(nil)
