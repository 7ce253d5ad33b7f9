package webpush

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"github.com/dmitrymomot/pushfan/pkg/subscription"
	"github.com/dmitrymomot/pushfan/pkg/vapid"
)

// maxPayloadSize is the largest plaintext that fits the 4096 byte record
// push services must accept, after the aes128gcm header and padding delimiter.
const maxPayloadSize = 3993

// Client sends encrypted push messages. It is safe for concurrent use.
// Zero value is not usable; use NewClient.
type Client struct {
	http       *http.Client
	ttl        time.Duration
	urgency    Urgency
	topic      string
	timeout    time.Duration
	recordSize uint32
}

// NewClient creates a Client with a pooled HTTP transport.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		ttl:     time.Hour,
		urgency: UrgencyNormal,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a Client using cfg; explicit opts win.
func NewClientFromConfig(cfg Config, opts ...Option) *Client {
	base := []Option{
		WithTTL(cfg.TTL),
		WithUrgency(Urgency(cfg.Urgency)),
		WithTopic(cfg.Topic),
		WithRequestTimeout(cfg.RequestTimeout),
		WithRecordSize(cfg.RecordSize),
	}
	return NewClient(append(base, opts...)...)
}

// Send encrypts payload for sub and posts it to the subscription endpoint.
func (c *Client) Send(ctx context.Context, sub subscription.Subscription, payload []byte, creds vapid.Credentials) error {
	if err := validateInputs(sub.Endpoint, payload); err != nil {
		return &DeliveryError{Err: err}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	doer := &trackingDoer{client: c.http}
	resp, err := webpush.SendNotificationWithContext(reqCtx, payload,
		&webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys:     webpush.Keys{Auth: sub.Auth, P256dh: sub.P256dh},
		},
		&webpush.Options{
			HTTPClient:      doer,
			Subscriber:      strings.TrimPrefix(creds.Subject, "mailto:"),
			VAPIDPublicKey:  creds.PublicKey,
			VAPIDPrivateKey: creds.PrivateKey,
			TTL:             int(c.ttl / time.Second),
			Urgency:         c.urgency,
			Topic:           c.topic,
			RecordSize:      c.recordSize,
		},
	)
	if err != nil {
		switch {
		case !doer.called:
			return &DeliveryError{Err: fmt.Errorf("%w: %w", ErrEncryption, err)}
		case errors.Is(reqCtx.Err(), context.DeadlineExceeded):
			return &DeliveryError{Err: fmt.Errorf("%w: %w", ErrTimeout, err)}
		case ctx.Err() != nil:
			return &DeliveryError{Err: ctx.Err()}
		default:
			return &DeliveryError{Err: fmt.Errorf("%w: %w", ErrTransport, err)}
		}
	}
	defer func() { _ = resp.Body.Close() }()

	return classify(resp)
}

// trackingDoer records whether the library got as far as sending a request,
// which separates message-building failures from transport failures.
type trackingDoer struct {
	client *http.Client
	called bool
}

func (d *trackingDoer) Do(req *http.Request) (*http.Response, error) {
	d.called = true
	return d.client.Do(req)
}

func validateInputs(endpoint string, payload []byte) error {
	if endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidEndpoint)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidEndpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidEndpoint)
	}

	if len(payload) > maxPayloadSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrInvalidPayload, len(payload), maxPayloadSize)
	}

	return nil
}

func classify(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024*64))
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024*64))
	derr := &DeliveryError{StatusCode: resp.StatusCode, Body: sanitizeBody(body)}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound || code == http.StatusGone:
		derr.Err = ErrSubscriptionGone
	case code == http.StatusRequestEntityTooLarge:
		derr.Err = ErrPayloadTooLarge
	case code == http.StatusTooManyRequests:
		derr.Err = ErrRateLimited
	case code >= 400 && code < 500:
		derr.Err = ErrRejected
	case code >= 500:
		derr.Err = ErrServiceUnavailable
	default:
		derr.Err = ErrUnexpectedStatus
	}

	return derr
}

// sanitizeBody flattens and truncates a response body for logs.
func sanitizeBody(body []byte) string {
	s := strings.TrimSpace(strings.ReplaceAll(string(body), "\n", " "))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
