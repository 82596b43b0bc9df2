package auth

import "context"

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping the household passphrase for another
// method (per-member passwords, OAuth) without changing the service layer.
type Authenticator interface {
	// Authenticate verifies the credential and returns the household it
	// grants access to.
	Authenticate(ctx context.Context, credential string) (string, error)
}
