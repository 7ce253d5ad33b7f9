package api

import "errors"

var (
	ErrInvalidJSON          = errors.New("api: invalid JSON body")
	ErrUnsupportedMediaType = errors.New("api: unsupported media type")
	ErrBodyTooLarge         = errors.New("api: request body too large")
)

// Error codes returned in the response envelope.
const (
	CodeInvalidJSON          = "invalid_json"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeBodyTooLarge         = "body_too_large"
	CodeInvalidSubscription  = "invalid_subscription"
	CodeCapacityExceeded     = "capacity_exceeded"
	CodeStoreFailed          = "store_failed"
	CodeUnauthorized         = "unauthorized"
	CodeEmptyPayload         = "empty_payload"
	CodeVAPIDNotConfigured   = "vapid_not_configured"
	CodeInternal             = "internal_error"
)
