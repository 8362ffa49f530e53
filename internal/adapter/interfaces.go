// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// book service.
//
// The primary abstraction is [BookServiceAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPBookServiceAdapter]) speaking the service's JSON API.
//
// Error values defined in errors.go are mapped from HTTP status codes and from
// {"success":0} response bodies by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-book-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BookServiceAdapter defines communication with the remote book service.
// Implementations own the session credentials and attach them to every
// authenticated request.
type BookServiceAdapter interface {
	// SetCredentials binds a cached credential pair to the adapter. It does
	// not contact the service; use IsLoggedIn to verify the pair.
	SetCredentials(creds models.Credentials)

	// Credentials returns the pair currently bound to the adapter, or a zero
	// value if none is set.
	Credentials() models.Credentials

	// Login exchanges an email/password pair for session credentials and binds
	// them to the adapter. Returns [ErrUnauthorized] (wrapped) when the
	// service rejects the pair.
	Login(ctx context.Context, email, password string) error

	// IsLoggedIn reports whether the bound credentials are accepted by the
	// service. A rejected session yields false with a nil error; transport
	// failures are returned as errors.
	IsLoggedIn(ctx context.Context) (bool, error)

	// Profile fetches the account profile for the bound credentials.
	Profile(ctx context.Context) (models.Profile, error)

	// Search runs a single search request and returns the entries as decoded.
	Search(ctx context.Context, query models.SearchQuery) ([]models.RawBook, error)

	// DownloadBook resolves the file for book and fetches its content.
	DownloadBook(ctx context.Context, book models.Book) (models.BookFile, error)
}
