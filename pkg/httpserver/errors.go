package httpserver

import "errors"

var (
	// ErrStart wraps listen and serve failures, including a second Run on a live server.
	ErrStart = errors.New("httpserver: failed to start")
	// ErrShutdown wraps errors from a graceful shutdown that did not finish in time.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
