package redis

import "errors"

var (
	ErrNotConfigured     = errors.New("redis: connection url not set")
	ErrInvalidURL        = errors.New("redis: invalid connection url")
	ErrNotReady          = errors.New("redis: not ready after retries")
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
