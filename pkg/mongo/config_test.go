package mongo_test

import (
	"context"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushfan/pkg/mongo"
)

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := env.ParseAsWithOptions[mongo.Config](env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.False(t, cfg.Enabled())
	assert.Equal(t, "pushfan", cfg.Database)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.True(t, cfg.RetryWrites)
}

func TestConnect_NotConfigured(t *testing.T) {
	t.Parallel()

	client, err := mongo.Connect(context.Background(), mongo.Config{})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, mongo.ErrNotConfigured)
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	client, err := mongo.Connect(context.Background(), mongo.Config{
		ConnectionURL: "not-a-mongo-url",
		RetryAttempts: 1,
	})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}
