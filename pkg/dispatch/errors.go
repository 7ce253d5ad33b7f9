package dispatch

import (
	"errors"

	"github.com/dmitrymomot/pushfan/pkg/logger"
)

var (
	ErrDeliveryTimeout  = errors.New("dispatch: delivery timed out")
	ErrDeliveryCanceled = errors.New("dispatch: delivery canceled")
)

// DeliveryError records why delivery to a single endpoint failed.
type DeliveryError struct {
	Endpoint string
	Err      error
}

// Error identifies the endpoint by fingerprint; the URL itself is a secret.
func (e *DeliveryError) Error() string {
	return "dispatch: delivery to " + logger.EndpointFingerprint(e.Endpoint) + " failed: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
