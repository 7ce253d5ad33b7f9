package logger

import (
	"encoding/hex"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// DispatchID records the dispatch identifier under the key "dispatch_id".
func DispatchID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("dispatch_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records d in milliseconds under the key "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Int64("duration_ms", d.Milliseconds())
}

// Count records an integer counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Queue records a queue name under the key "queue".
func Queue(name string) slog.Attr {
	return slog.String("queue", name)
}

// Endpoint records a push endpoint as a group holding the push service host
// and an 8-byte fingerprint of the full URL. The URL itself is a bearer
// capability and is never logged.
func Endpoint(endpoint string) slog.Attr {
	return slog.Group("endpoint",
		slog.String("host", endpointHost(endpoint)),
		slog.String("fp", EndpointFingerprint(endpoint)),
	)
}

// EndpointFingerprint returns a short stable hex digest of endpoint.
func EndpointFingerprint(endpoint string) string {
	sum := blake2b.Sum256([]byte(endpoint))
	return hex.EncodeToString(sum[:8])
}

func endpointHost(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return "invalid"
	}
	return u.Host
}
