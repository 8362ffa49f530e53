// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's use cases on top of the book
// service adapter and the local stores: establishing a session, searching
// and downloading books.
package service

import (
	"context"

	"github.com/MKhiriev/go-book-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService establishes the authenticated session every other
// operation depends on.
type SessionService interface {
	// Establish returns a session that has passed the liveness check, trying
	// the credential cache first and prompting for email and password
	// otherwise. It returns an error wrapping [ErrAuth] when no session could
	// be established, [ErrAuthAbandoned] when the user gave up.
	Establish(ctx context.Context) (models.Session, error)
}

// SearchService turns a query into normalized, bounded results.
type SearchService interface {
	Search(ctx context.Context, query models.SearchQuery) ([]models.Book, error)
}

// DownloadService saves books to disk and keeps the local download history.
type DownloadService interface {
	// Download fetches book and writes it into targetDir, replacing a file of
	// the same name. An empty targetDir means the configured directory.
	Download(ctx context.Context, book models.Book, targetDir string) (models.DownloadOutcome, error)

	// History returns up to limit recorded downloads, most recent first. A
	// non-positive limit means the configured one.
	History(ctx context.Context, limit int) ([]models.DownloadRecord, error)
}
