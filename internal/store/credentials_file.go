package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/models"
)

const credentialsFileMode = 0o600

type credentialFileStore struct {
	path   string
	logger *logger.Logger
}

// NewCredentialFileStore returns a [CredentialStore] backed by a JSON file at
// path holding {"remix_userid": ..., "remix_userkey": ...}.
func NewCredentialFileStore(path string, logger *logger.Logger) CredentialStore {
	return &credentialFileStore{path: path, logger: logger}
}

func (s *credentialFileStore) Load(ctx context.Context) (models.Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("func", "credentialFileStore.Load").
				Str("path", s.path).Msg("credential cache is unreadable")
		}
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrCredentialsNotFound, err)
	}

	var creds models.Credentials
	if err = json.Unmarshal(raw, &creds); err != nil {
		s.logger.Warn().Err(err).Str("func", "credentialFileStore.Load").
			Str("path", s.path).Msg("credential cache is malformed")
		return models.Credentials{}, fmt.Errorf("%w: decode %s: %w", ErrCredentialsNotFound, s.path, err)
	}

	if !creds.Complete() {
		return models.Credentials{}, fmt.Errorf("%w: incomplete record in %s", ErrCredentialsNotFound, s.path)
	}

	return creds, nil
}

// Save writes the pair to a temporary file next to the target and renames it
// into place, so readers observe either the old or the new record.
func (s *credentialFileStore) Save(ctx context.Context, creds models.Credentials) error {
	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(credentialsFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp credentials file: %w", err)
	}
	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp credentials file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp credentials file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp credentials file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}

	s.logger.Debug().Str("func", "credentialFileStore.Save").Str("path", s.path).Msg("credentials saved")
	return nil
}
