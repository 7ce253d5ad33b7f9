package subscription

import (
	"errors"

	"github.com/dmitrymomot/pushfan/pkg/validator"
)

// Keys carries the client-generated encryption keys of a push subscription,
// as found under "keys" in PushSubscription.toJSON().
type Keys struct {
	Auth   string `json:"auth" bson:"auth"`
	P256dh string `json:"p256dh" bson:"p256dh"`
}

// Candidate is the raw registration input as a browser serializes it:
// {"endpoint": "...", "keys": {"auth": "...", "p256dh": "..."}}.
type Candidate struct {
	Endpoint       string `json:"endpoint" bson:"endpoint"`
	ExpirationTime *int64 `json:"expirationTime,omitempty" bson:"expiration_time,omitempty"`
	Keys           Keys   `json:"keys" bson:"keys"`
}

// Subscription is a validated push endpoint with its encryption keys.
type Subscription struct {
	Endpoint string
	Auth     string
	P256dh   string
}

// New validates c and returns the Subscription it describes.
// Every failed field is reported; the error matches ErrInvalidSubscription
// and carries validator.ValidationErrors.
func New(c Candidate) (Subscription, error) {
	if err := validator.Apply(
		validator.RequiredString("endpoint", c.Endpoint),
		validator.RequiredString("keys.auth", c.Keys.Auth),
		validator.RequiredString("keys.p256dh", c.Keys.P256dh),
	); err != nil {
		return Subscription{}, errors.Join(ErrInvalidSubscription, err)
	}

	return Subscription{
		Endpoint: c.Endpoint,
		Auth:     c.Keys.Auth,
		P256dh:   c.Keys.P256dh,
	}, nil
}
