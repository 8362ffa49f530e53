package adapter

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("not found")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrServiceFailure     = errors.New("book service failure")
	ErrRejected           = errors.New("request rejected by book service")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrNoCredentials      = errors.New("no credentials bound")
)
