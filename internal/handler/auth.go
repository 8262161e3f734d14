package handler

import (
	"context"  // provides context with cancellation for service calls
	"errors"   // sentinel error matching
	"log"      // internal-only logging of auth failures
	"net/http" // HTTP status codes and primitives
	"time"     // timeouts for DB-backed calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/kasraef/blog-backend/internal/queue"      // domain event payloads
	"github.com/kasraef/blog-backend/internal/repository" // repository sentinel errors
	"github.com/kasraef/blog-backend/internal/service"    // auth service and queue publishing
	"github.com/kasraef/blog-backend/internal/utils"      // session token type
)

// Authenticator is the slice of the auth service the handler needs.
// *service.AuthService satisfies it; tests substitute fakes.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (utils.SessionToken, error)
}

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// ----- DTOs -----

// registerReq carries an ID field only so that callers attempting to choose
// their own identifier can be rejected; the id is always server-generated.
type registerReq struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register: hash the password, persist the credential, return 201.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	// The primary identifier is never client-chosen. Reject the request
	// outright when one is supplied instead of silently discarding it.
	if req.ID != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id must not be supplied"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Auth.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
		case errors.Is(err, repository.ErrUsernameExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		default:
			log.Printf("auth: register failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
		}
	}

	// Best-effort domain event; registration never fails on broker loss.
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = service.PublishUserRegistered(pubCtx, queue.UserRegisteredEvent{
			UserID:       id,
			Username:     req.Username,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Registration Successful"})
}

// Login: verify the credential and return a session token.  An unknown
// username and a wrong password produce the same response so the endpoint
// cannot be used to enumerate registered usernames; the distinction only
// survives in the server log.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tok, err := h.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrIncorrectPassword):
			log.Printf("auth: login rejected for %q: %v", req.Username, err)
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		default:
			log.Printf("auth: login failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   tok.Token,
	})
}
