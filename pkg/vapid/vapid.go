package vapid

import (
	"context"
	"errors"
	"strings"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/caarlos0/env/v11"
)

// Environment variable names of the three credential fields.
const (
	EnvPrivateKey = "VAPID_PRIVATE_KEY"
	EnvPublicKey  = "VAPID_PUBLIC_KEY"
	EnvSubject    = "VAPID_SUBJECT"
)

// Credentials is the process-wide signing identity.
type Credentials struct {
	PrivateKey string `env:"VAPID_PRIVATE_KEY"`
	PublicKey  string `env:"VAPID_PUBLIC_KEY"`
	// Subject is a contact URI, "mailto:ops@example.com" or an https URL.
	Subject string `env:"VAPID_SUBJECT"`
}

// Validate returns a *MissingCredentialsError for the first empty field,
// checked in the order private key, public key, subject.
func (c Credentials) Validate() error {
	switch {
	case strings.TrimSpace(c.PrivateKey) == "":
		return &MissingCredentialsError{Field: EnvPrivateKey}
	case strings.TrimSpace(c.PublicKey) == "":
		return &MissingCredentialsError{Field: EnvPublicKey}
	case strings.TrimSpace(c.Subject) == "":
		return &MissingCredentialsError{Field: EnvSubject}
	}
	return nil
}

// Source resolves credentials at the time they are needed.
type Source interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Credentials, error)

func (f SourceFunc) Credentials(ctx context.Context) (Credentials, error) {
	return f(ctx)
}

// EnvSource reads credentials from the process environment on every call.
// It does not validate them; Dispatch does.
func EnvSource() Source {
	return SourceFunc(func(context.Context) (Credentials, error) {
		creds, err := env.ParseAs[Credentials]()
		if err != nil {
			return Credentials{}, errors.Join(ErrMissingCredentials, err)
		}
		return creds, nil
	})
}

// Static always returns creds.
func Static(creds Credentials) Source {
	return SourceFunc(func(context.Context) (Credentials, error) {
		return creds, nil
	})
}

// GenerateKeys returns a new base64url-encoded key pair.
func GenerateKeys() (privateKey, publicKey string, err error) {
	privateKey, publicKey, err = webpush.GenerateVAPIDKeys()
	if err != nil {
		return "", "", errors.Join(ErrKeyGeneration, err)
	}
	return privateKey, publicKey, nil
}
