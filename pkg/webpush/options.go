package webpush

import (
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
)

// Urgency hints how soon the push service should deliver (RFC 8030 §5.3).
type Urgency = webpush.Urgency

const (
	UrgencyVeryLow = webpush.UrgencyVeryLow
	UrgencyLow     = webpush.UrgencyLow
	UrgencyNormal  = webpush.UrgencyNormal
	UrgencyHigh    = webpush.UrgencyHigh
)

// Config holds client settings read from the environment.
type Config struct {
	TTL            time.Duration `env:"PUSH_TTL" envDefault:"1h"`
	Urgency        string        `env:"PUSH_URGENCY" envDefault:"normal"`
	Topic          string        `env:"PUSH_TOPIC"`
	RequestTimeout time.Duration `env:"PUSH_REQUEST_TIMEOUT" envDefault:"10s"`
	RecordSize     uint32        `env:"PUSH_RECORD_SIZE"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled default client. Nil is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTTL sets how long the push service keeps an undelivered message.
// Sub-second values are truncated; negative values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl >= 0 {
			c.ttl = ttl
		}
	}
}

// WithUrgency sets the Urgency header. Unknown values are ignored.
func WithUrgency(u Urgency) Option {
	return func(c *Client) {
		switch u {
		case UrgencyVeryLow, UrgencyLow, UrgencyNormal, UrgencyHigh:
			c.urgency = u
		}
	}
}

// WithTopic sets the Topic header so a newer message replaces a pending one.
func WithTopic(topic string) Option {
	return func(c *Client) {
		c.topic = topic
	}
}

// WithRequestTimeout bounds a single push request.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRecordSize limits the encrypted record size. Zero keeps the library default.
func WithRecordSize(n uint32) Option {
	return func(c *Client) {
		c.recordSize = n
	}
}
