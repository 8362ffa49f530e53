package store

import (
	"context"

	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// Credentials is the JSON file holding the cached session pair.
	Credentials CredentialStore

	// DownloadHistory is the SQLite-backed log of completed downloads. It is
	// nil when the history database could not be opened or migrated.
	DownloadHistory DownloadHistoryRepository

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Wires the credential file store.
//  2. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  3. Runs pending schema migrations via [DB.Migrate] and wires the download
//     history repository.
//
// A history database that cannot be opened or migrated is logged and leaves
// DownloadHistory nil; login, search and download keep working without it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) *ClientStorages {
	logger.Debug().Str("func", "NewClientStorages").Msg("creating client storages")

	storages := &ClientStorages{
		Credentials: NewCredentialFileStore(cfg.CredentialsFile, logger),
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		logger.Warn().Err(err).Str("func", "NewClientStorages").
			Str("dsn", cfg.DB.DSN).Msg("download history disabled: sqlite connection error")
		return storages
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		logger.Warn().Err(err).Str("func", "NewClientStorages").
			Str("dsn", cfg.DB.DSN).Msg("download history disabled: migration failed")
		return storages
	}

	storages.DownloadHistory = NewDownloadHistoryRepository(db, logger)
	storages.db = db
	return storages
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
