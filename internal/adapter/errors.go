package adapter

import "errors"

var (
	ErrNotFound     = errors.New("blob not found")
	ErrUnauthorized = errors.New("blob store unauthorized")
	ErrBadRequest   = errors.New("blob store rejected request")
	ErrUnavailable  = errors.New("blob store unavailable")
	ErrIntegrity    = errors.New("blob integrity check failed")
	ErrInvalidKey   = errors.New("invalid blob key")

	ErrUnknownBackend = errors.New("unknown remote backend")
)
