// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the auth
// service and handlers to distinguish between different failure scenarios
// without inspecting driver-specific error strings themselves. For example,
// ErrUsernameExists signals that an insert collided with the unique index
// on user_credentials.user_name, while ErrNotFound covers any exact-match
// lookup that returned no rows.
package repository

import "errors"

// ErrUsernameExists is returned when a credential insert violates the
// unique username constraint. The auth service translates this into a
// duplicate-registration failure (HTTP 409).
var ErrUsernameExists = errors.New("username already exists")

// ErrNotFound is returned when a lookup matches no rows. Callers decide
// how much of this to reveal; the login flow deliberately collapses it
// with a password mismatch before anything reaches the client.
var ErrNotFound = errors.New("record not found")
