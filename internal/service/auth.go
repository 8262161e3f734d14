// Package service holds the business logic that sits between HTTP handlers
// and the repositories.  The auth service translates raw credentials into
// stored hashes and issued session tokens; it is the only place plaintext
// passwords exist, and only for the lifetime of a single call.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/kasraef/blog-backend/internal/model"
	"github.com/kasraef/blog-backend/internal/repository"
	"github.com/kasraef/blog-backend/internal/utils"
)

// Sentinel errors returned by the auth service.  Handlers map these onto
// HTTP statuses; everything not covered below is an internal failure.
var (
	// ErrValidation flags missing or malformed input the caller can fix.
	ErrValidation = errors.New("username and password are required")
	// ErrIncorrectPassword means the credential exists but the password
	// did not match. Kept distinct from repository.ErrNotFound internally
	// for logging; handlers collapse the two before responding.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrHashing wraps a bcrypt failure. Non-retryable.
	ErrHashing = errors.New("password hashing failed")
	// ErrStorageUnavailable wraps datastore connectivity/query errors,
	// including exceeded deadlines. The caller may retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// CredentialStore is the persistence capability the auth service needs.
// *repository.UserRepo satisfies it; tests substitute fakes.
type CredentialStore interface {
	Create(ctx context.Context, username, passwordHash string) (string, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

// AuthService orchestrates registration and login.
type AuthService struct {
	Store      CredentialStore
	JWTSecret  string
	TokenTTL   int // hours
	BcryptCost int
}

func NewAuthService(store CredentialStore, jwtSecret string, tokenTTLHours, bcryptCost int) *AuthService {
	return &AuthService{Store: store, JWTSecret: jwtSecret, TokenTTL: tokenTTLHours, BcryptCost: bcryptCost}
}

// Register hashes the password and persists a new credential, returning the
// server-generated id. The plaintext password is neither stored nor logged.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrValidation
	}
	hash, err := utils.HashPassword(password, s.BcryptCost)
	if err != nil {
		log.Printf("auth: hashing failed for registration attempt: %v", err)
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	id, err := s.Store.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return id, nil
}

// Login verifies a credential and issues a session token on success.  The
// comparison always goes through bcrypt; hashes are never compared as
// strings.  Absent users surface as repository.ErrNotFound and bad
// passwords as ErrIncorrectPassword; callers decide how much to reveal.
func (s *AuthService) Login(ctx context.Context, username, password string) (utils.SessionToken, error) {
	if username == "" || password == "" {
		return utils.SessionToken{}, ErrValidation
	}
	u, err := s.Store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.SessionToken{}, err
		}
		return utils.SessionToken{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return utils.SessionToken{}, ErrIncorrectPassword
	}
	tok, err := utils.NewSessionToken(s.JWTSecret, u.ID, u.Username, s.TokenTTL)
	if err != nil {
		return utils.SessionToken{}, fmt.Errorf("issue session token: %w", err)
	}
	return tok, nil
}
