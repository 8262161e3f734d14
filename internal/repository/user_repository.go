package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/kasraef/blog-backend/internal/model"
)

// UserRepo is the credential store. It owns the durable mapping from
// username to password hash and never sees a plaintext password: hashing
// happens one layer up, in the auth service.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a credential with a freshly generated UUID and returns it.
// The id is always generated here, server-side; nothing a client sends can
// influence it.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_credentials (id, user_name, password) VALUES (?,?,?)",
		id, username, passwordHash)
	if err != nil {
		// MySQL 1062 = duplicate entry for the unique user_name index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return "", ErrUsernameExists
		}
		return "", err
	}
	return id, nil
}

// FindByUsername fetches a credential by exact, case-sensitive username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_name,password FROM user_credentials WHERE user_name=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}
