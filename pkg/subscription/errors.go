package subscription

import "errors"

var (
	// ErrInvalidSubscription is returned by Add when a required field is
	// missing or empty. The registry is unchanged.
	ErrInvalidSubscription = errors.New("invalid subscription")

	// ErrCapacityExceeded is returned by Add when the registry is full.
	// The registry is unchanged.
	ErrCapacityExceeded = errors.New("subscription registry capacity exceeded")
)
