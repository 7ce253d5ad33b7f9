package userstore

import "errors"

var (
	ErrSaveFailed = errors.New("userstore: failed to save user")
	ErrNotFound   = errors.New("userstore: user not found")
)
