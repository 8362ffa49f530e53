// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-book-fetcher/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Errors the adapter did not classify (dial failures,
// timeouts, cancellation) are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return withDetail(ErrInvalidCredentials, msg)
	case errors.Is(err, adapter.ErrRejected):
		return withDetail(ErrServiceRejected, msg)
	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrRateLimited
	case errors.Is(err, adapter.ErrNotFound):
		return ErrBookNotFound
	case errors.Is(err, adapter.ErrBadRequest):
		return withDetail(ErrInvalidRequest, msg)
	case errors.Is(err, adapter.ErrNoCredentials):
		return ErrNoSession
	case errors.Is(err, adapter.ErrServiceFailure), errors.Is(err, adapter.ErrUnexpectedResponse):
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return ""
}

func withDetail(sentinel error, detail string) error {
	if detail == "" || strings.EqualFold(detail, sentinel.Error()) {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}
