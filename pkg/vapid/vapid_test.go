package vapid_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushfan/pkg/vapid"
)

func validCredentials() vapid.Credentials {
	return vapid.Credentials{
		PrivateKey: "private",
		PublicKey:  "public",
		Subject:    "mailto:ops@example.com",
	}
}

func TestCredentials_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*vapid.Credentials)
		wantField string
	}{
		{name: "complete", mutate: func(*vapid.Credentials) {}},
		{name: "no private key", mutate: func(c *vapid.Credentials) { c.PrivateKey = "" }, wantField: vapid.EnvPrivateKey},
		{name: "no public key", mutate: func(c *vapid.Credentials) { c.PublicKey = " " }, wantField: vapid.EnvPublicKey},
		{name: "no subject", mutate: func(c *vapid.Credentials) { c.Subject = "" }, wantField: vapid.EnvSubject},
		{name: "first missing field wins", mutate: func(c *vapid.Credentials) { *c = vapid.Credentials{} }, wantField: vapid.EnvPrivateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			creds := validCredentials()
			tt.mutate(&creds)

			err := creds.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, vapid.ErrMissingCredentials)

			var missing *vapid.MissingCredentialsError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantField, missing.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestEnvSource(t *testing.T) {
	t.Setenv(vapid.EnvPrivateKey, "priv")
	t.Setenv(vapid.EnvPublicKey, "pub")
	t.Setenv(vapid.EnvSubject, "mailto:ops@example.com")

	src := vapid.EnvSource()
	creds, err := src.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, vapid.Credentials{PrivateKey: "priv", PublicKey: "pub", Subject: "mailto:ops@example.com"}, creds)

	// Re-read on each call.
	t.Setenv(vapid.EnvSubject, "")
	creds, err = src.Credentials(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, creds.Validate(), vapid.ErrMissingCredentials)
}

func TestStatic(t *testing.T) {
	t.Parallel()
	creds, err := vapid.Static(validCredentials()).Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, validCredentials(), creds)
}

func TestGenerateKeys(t *testing.T) {
	t.Parallel()

	priv, pub, err := vapid.GenerateKeys()
	require.NoError(t, err)

	rawPriv, err := base64.RawURLEncoding.DecodeString(priv)
	require.NoError(t, err)
	assert.Len(t, rawPriv, 32)

	rawPub, err := base64.RawURLEncoding.DecodeString(pub)
	require.NoError(t, err)
	require.Len(t, rawPub, 65)
	assert.Equal(t, byte(0x04), rawPub[0], "uncompressed point")

	priv2, _, err := vapid.GenerateKeys()
	require.NoError(t, err)
	assert.NotEqual(t, priv, priv2)
}
