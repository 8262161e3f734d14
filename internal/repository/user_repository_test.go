package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/google/uuid"
)

func newSQLMockDB(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepo(db), mock
}

func TestUserRepoCreate_GeneratesServerSideID(t *testing.T) {
	t.Parallel()

	repo, mock := newSQLMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_credentials (id, user_name, password) VALUES (?,?,?)")).
		WithArgs(sqlmock.AnyArg(), "alice", "$2a$10$hash").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := repo.Create(context.Background(), "alice", "$2a$10$hash")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("returned id %q is not a uuid: %v", id, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepoCreate_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo, mock := newSQLMockDB(t)
	// What the mysql driver reports when the unique user_name index is hit,
	// which is also how the losing side of two concurrent registrations
	// observes the conflict.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_credentials")).
		WithArgs(sqlmock.AnyArg(), "alice", sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'user_credentials.user_name'"))

	if _, err := repo.Create(context.Background(), "alice", "$2a$10$hash"); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestUserRepoCreate_StorageError(t *testing.T) {
	t.Parallel()

	repo, mock := newSQLMockDB(t)
	dbErr := errors.New("driver: bad connection")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_credentials")).
		WillReturnError(dbErr)

	_, err := repo.Create(context.Background(), "alice", "$2a$10$hash")
	if err == nil || errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected raw storage error, got %v", err)
	}
}

func TestUserRepoFindByUsername(t *testing.T) {
	t.Parallel()

	repo, mock := newSQLMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "user_name", "password"}).
		AddRow("3f6b0a2e-1111-4222-8333-444455556666", "alice", "$2a$10$hash")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,user_name,password FROM user_credentials WHERE user_name=? LIMIT 1")).
		WithArgs("alice").
		WillReturnRows(rows)

	u, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByUsername error: %v", err)
	}
	if u.Username != "alice" || u.PasswordHash != "$2a$10$hash" {
		t.Fatalf("unexpected row: %+v", u)
	}
}

func TestUserRepoFindByUsername_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newSQLMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,user_name,password FROM user_credentials")).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "password"}))

	if _, err := repo.FindByUsername(context.Background(), "bob"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
