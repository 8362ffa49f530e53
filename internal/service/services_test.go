package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-book-fetcher/internal/app"
	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/mock"
	"github.com/MKhiriev/go-book-fetcher/internal/store"
	"github.com/MKhiriev/go-book-fetcher/internal/testutil"
	"github.com/MKhiriev/go-book-fetcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestNewClientServices_HistoryDatabaseUnavailable builds the services over
// storages whose history database cannot be created and checks that login
// and download still work.
func TestNewClientServices_HistoryDatabaseUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	dir := t.TempDir()

	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	credsPath := filepath.Join(dir, "creds.json")
	require.NoError(t, os.WriteFile(credsPath, []byte(`{"remix_userid":42,"remix_userkey":"cached-key"}`), 0o600))

	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{
			CredentialsFile: credsPath,
			DB:              config.ClientDB{DSN: filepath.Join(blocker, "history.db")},
		},
		Search:    config.ClientSearch{Languages: []string{"english"}, Formats: []string{"epub"}, Limit: 5},
		Downloads: config.ClientDownloads{Dir: filepath.Join(dir, "Books"), HistoryLimit: 20},
	}

	storages := store.NewClientStorages(ctx, cfg.Storage, logger.Nop())
	defer storages.Close()
	require.Nil(t, storages.DownloadHistory)

	mockAdapter := mock.NewMockBookServiceAdapter(ctrl)
	term := testutil.NewScriptedTerminal()
	services := NewClientServices(mockAdapter, storages, term, cfg, logger.Nop())

	cached := models.Credentials{UserID: "42", UserKey: "cached-key"}
	gomock.InOrder(
		mockAdapter.EXPECT().SetCredentials(cached),
		mockAdapter.EXPECT().IsLoggedIn(ctx).Return(true, nil),
		mockAdapter.EXPECT().Profile(ctx).Return(models.Profile{ID: "42", UserKey: "cached-key"}, nil),
	)

	session, err := services.SessionService.Establish(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SessionSourceCached, session.Source)
	assert.Equal(t, []string{app.MsgCachedLogin}, term.Output())

	mockAdapter.EXPECT().DownloadBook(ctx, duneBook).Return(models.BookFile{Name: "Dune.epub", Content: []byte("x")}, nil)

	outcome, err := services.DownloadService.Download(ctx, duneBook, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Books", "Dune.epub"), outcome.SavedPath)

	_, err = services.DownloadService.History(ctx, 0)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}
