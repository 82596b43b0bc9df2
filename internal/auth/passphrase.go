package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid passphrase")
	ErrWeakPassphrase     = errors.New("passphrase must be at least 8 characters")
)

// PassphraseAuthenticator grants access to one household for anyone who
// knows its shared passphrase. Only the bcrypt hash is held in memory.
type PassphraseAuthenticator struct {
	household string
	hash      []byte
}

// NewPassphraseAuthenticator creates an authenticator from a bcrypt hash.
func NewPassphraseAuthenticator(household, passphraseHash string) (*PassphraseAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(passphraseHash)); err != nil {
		return nil, fmt.Errorf("invalid passphrase hash: %w", err)
	}
	return &PassphraseAuthenticator{
		household: household,
		hash:      []byte(passphraseHash),
	}, nil
}

// Authenticate compares the passphrase against the stored hash.
func (a *PassphraseAuthenticator) Authenticate(ctx context.Context, credential string) (string, error) {
	if credential == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.household, nil
}

// HashPassphrase produces the value for HOUSEHOLD_PASSPHRASE_HASH.
func HashPassphrase(passphrase string) (string, error) {
	if len(passphrase) < 8 {
		return "", ErrWeakPassphrase
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return string(hashed), nil
}
