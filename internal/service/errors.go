package service

import (
	"errors"
	"fmt"
)

var (
	ErrAuth          = errors.New("authentication failed")
	ErrAuthAbandoned = fmt.Errorf("%w: login abandoned", ErrAuth)

	ErrEmptyEmail         = errors.New("email must not be empty")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotAccepted = errors.New("the service did not accept the session")
	ErrNoSession          = errors.New("not logged in")
)

var (
	ErrSearch     = errors.New("search failed")
	ErrEmptyQuery = fmt.Errorf("%w: empty query", ErrSearch)
)

var (
	ErrDownload     = errors.New("download failed")
	ErrBookNotFound = errors.New("book file is not available")
	ErrHistory      = errors.New("download history unavailable")

	ErrHistoryDisabled = errors.New("history database could not be opened, see the log file")
)

var (
	ErrInvalidRequest     = errors.New("the service rejected the request")
	ErrServiceRejected    = errors.New("the service refused")
	ErrRateLimited        = errors.New("too many requests, try again later")
	ErrServiceUnavailable = errors.New("the book service is unavailable")
)
