package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the catalog has no title with the requested ID
	ErrNotFound = errors.New("title not found in catalog")

	// ErrCatalogUnreachable indicates a transport-level failure talking to the catalog
	ErrCatalogUnreachable = errors.New("catalog is unreachable")

	// ErrNotSignedIn indicates a library mutation was attempted without a session
	ErrNotSignedIn = errors.New("sign in to manage your library")

	// ErrUserExists indicates a sign-up collided with an existing account
	ErrUserExists = errors.New("an account with that username already exists")

	// ErrBadCredentials indicates sign-in with a wrong username or password
	ErrBadCredentials = errors.New("invalid username or password")
)

// UpstreamError reports a non-success status from the catalog API.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog returned status %d", e.Status)
}
