package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushfan/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestIDAndDispatchID(t *testing.T) {
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))

	attr := logger.DispatchID("d-1")
	assert.Equal(t, "dispatch_id", attr.Key)
	assert.True(t, logger.DispatchID(nil).Equal(slog.Attr{}))
}

func TestDurationAndCount(t *testing.T) {
	d := logger.Duration(1500 * time.Millisecond)
	assert.Equal(t, "duration_ms", d.Key)
	assert.Equal(t, int64(1500), d.Value.Int64())

	c := logger.Count("delivered", 3)
	assert.Equal(t, "delivered", c.Key)
	assert.Equal(t, int64(3), c.Value.Int64())
}

func TestEndpoint(t *testing.T) {
	const endpoint = "https://fcm.googleapis.com/fcm/send/secret-token"

	attr := logger.Endpoint(endpoint)
	require.Equal(t, "endpoint", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	group := attr.Value.Group()
	require.Len(t, group, 2)
	assert.Equal(t, "fcm.googleapis.com", group[0].Value.String())
	assert.Equal(t, logger.EndpointFingerprint(endpoint), group[1].Value.String())
	assert.Len(t, group[1].Value.String(), 16)

	for _, a := range group {
		assert.False(t, strings.Contains(a.Value.String(), "secret-token"))
	}
}

func TestEndpoint_Invalid(t *testing.T) {
	group := logger.Endpoint("not a url").Value.Group()
	assert.Equal(t, "invalid", group[0].Value.String())
}

func TestEndpointFingerprint_Stable(t *testing.T) {
	a := logger.EndpointFingerprint("https://push.example.com/1")
	b := logger.EndpointFingerprint("https://push.example.com/1")
	c := logger.EndpointFingerprint("https://push.example.com/2")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
