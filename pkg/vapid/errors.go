package vapid

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials means the VAPID configuration is incomplete.
	// It is a configuration error: retrying the same call cannot succeed.
	ErrMissingCredentials = errors.New("vapid: missing credentials")

	ErrKeyGeneration = errors.New("vapid: failed to generate key pair")
)

// MissingCredentialsError names the configuration value that is absent.
type MissingCredentialsError struct {
	Field string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("%s: %s not set", ErrMissingCredentials, e.Field)
}

func (e *MissingCredentialsError) Unwrap() error {
	return ErrMissingCredentials
}
