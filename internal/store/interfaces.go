// Package store holds the client's local persistence: the credential cache
// file and the SQLite download history.
package store

import (
	"context"

	"github.com/MKhiriev/go-book-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore persists the single cached credential pair.
type CredentialStore interface {
	// Load returns the cached pair. A missing, unreadable, malformed or
	// incomplete cache yields [ErrCredentialsNotFound].
	Load(ctx context.Context) (models.Credentials, error)
	// Save replaces the cached pair atomically.
	Save(ctx context.Context, creds models.Credentials) error
}

// DownloadHistoryRepository is the local log of completed downloads.
type DownloadHistoryRepository interface {
	SaveDownload(ctx context.Context, record models.DownloadRecord) error
	ListDownloads(ctx context.Context, limit int) ([]models.DownloadRecord, error)
}
