package webpush

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEndpoint    = errors.New("webpush: invalid endpoint")
	ErrInvalidPayload     = errors.New("webpush: invalid payload")
	ErrEncryption         = errors.New("webpush: failed to encrypt message")
	ErrTransport          = errors.New("webpush: transport failure")
	ErrTimeout            = errors.New("webpush: request timeout")
	ErrSubscriptionGone   = errors.New("webpush: subscription no longer valid")
	ErrPayloadTooLarge    = errors.New("webpush: payload too large")
	ErrRateLimited        = errors.New("webpush: rate limited by push service")
	ErrRejected           = errors.New("webpush: rejected by push service")
	ErrServiceUnavailable = errors.New("webpush: push service unavailable")
	ErrUnexpectedStatus   = errors.New("webpush: unexpected push service status")
)

// DeliveryError describes a failed send.
type DeliveryError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	// Body is a sanitized excerpt of the push service response.
	Body string
	Err  error
}

func (e *DeliveryError) Error() string {
	msg := e.Err.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether err means the subscription should not be sent
// to again.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrSubscriptionGone)
}
