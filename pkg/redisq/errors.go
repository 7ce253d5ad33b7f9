package redisq

import "errors"

var (
	ErrEmptyPayload = errors.New("redisq: empty payload")
	ErrPublish      = errors.New("redisq: failed to publish message")
	ErrDeadLetter   = errors.New("redisq: failed to store dead letter")
)
