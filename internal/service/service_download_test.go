// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-fetcher/internal/adapter"
	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/mock"
	"github.com/MKhiriev/go-book-fetcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var duneBook = models.Book{
	ID:              "1",
	Hash:            "a1",
	Title:           "Dune",
	Author:          "Frank Herbert",
	Extension:       "epub",
	SizeDescription: "1.2 MB",
	Language:        "english",
}

type clipboardSpy struct {
	copied []string
	err    error
}

func (c *clipboardSpy) write(s string) error {
	c.copied = append(c.copied, s)
	return c.err
}

func newTestDownloadSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.ClientDownloads,
) (*downloadService, *mock.MockBookServiceAdapter, *mock.MockDownloadHistoryRepository, *clipboardSpy) {
	t.Helper()
	mockAdapter := mock.NewMockBookServiceAdapter(ctrl)
	mockHistory := mock.NewMockDownloadHistoryRepository(ctrl)
	spy := &clipboardSpy{}

	svc := NewDownloadService(mockAdapter, mockHistory, cfg, logger.Nop()).(*downloadService)
	svc.copyToClipboard = spy.write
	svc.now = func() time.Time { return fixedNow }

	return svc, mockAdapter, mockHistory, spy
}

// ── Download ─────────────────────────────────────────────────────────────────

func TestDownloadService_Download_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := filepath.Join(t.TempDir(), "Books")
	svc, mockAdapter, mockHistory, spy := newTestDownloadSvc(t, ctrl, config.ClientDownloads{Dir: dir})
	ctx := context.Background()

	wantPath := filepath.Join(dir, "Dune (Frank Herbert).epub")

	mockAdapter.EXPECT().DownloadBook(ctx, duneBook).
		Return(models.BookFile{Name: "Dune (Frank Herbert).epub", Content: []byte("epub bytes")}, nil)
	mockHistory.EXPECT().SaveDownload(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.DownloadRecord) error {
			assert.NotEmpty(t, rec.ID)
			assert.Equal(t, duneBook.ID, rec.BookID)
			assert.Equal(t, "Dune", rec.Title)
			assert.Equal(t, "Frank Herbert", rec.Author)
			assert.Equal(t, "epub", rec.Extension)
			assert.Equal(t, wantPath, rec.SavedPath)
			assert.Equal(t, fixedNow, rec.DownloadedAt)
			return nil
		})

	outcome, err := svc.Download(ctx, duneBook, "")

	require.NoError(t, err)
	assert.Equal(t, wantPath, outcome.SavedPath)

	content, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Equal(t, "epub bytes", string(content))
	assert.Empty(t, spy.copied, "clipboard is off by default")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestDownloadService_Download_ExplicitDirAndClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockHistory, spy := newTestDownloadSvc(t, ctrl, config.ClientDownloads{
		Dir:                 filepath.Join(t.TempDir(), "unused"),
		CopyPathToClipboard: true,
	})
	dir := t.TempDir()

	mockAdapter.EXPECT().DownloadBook(gomock.Any(), duneBook).Return(models.BookFile{Name: "dune.pdf", Content: []byte("x")}, nil)
	mockHistory.EXPECT().SaveDownload(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.Download(context.Background(), duneBook, dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dune.pdf"), outcome.SavedPath)
	assert.Equal(t, []string{outcome.SavedPath}, spy.copied)
}

func TestDownloadService_Download_ClipboardFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockHistory, spy := newTestDownloadSvc(t, ctrl, config.ClientDownloads{
		Dir:                 t.TempDir(),
		CopyPathToClipboard: true,
	})
	spy.err = errors.New("no clipboard utilities available")

	mockAdapter.EXPECT().DownloadBook(gomock.Any(), gomock.Any()).Return(models.BookFile{Name: "dune.pdf", Content: []byte("x")}, nil)
	mockHistory.EXPECT().SaveDownload(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Download(context.Background(), duneBook, "")
	assert.NoError(t, err)
}

func TestDownloadService_Download_OverwritesExistingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	svc, mockAdapter, mockHistory, _ := newTestDownloadSvc(t, ctrl, config.ClientDownloads{Dir: dir})

	target := filepath.Join(dir, "Dune.epub")
	require.NoError(t, os.WriteFile(target, []byte("old edition"), 0o644))

	mockAdapter.EXPECT().DownloadBook(gomock.Any(), gomock.Any()).Return(models.BookFile{Name: "Dune.epub", Content: []byte("new edition")}, nil)
	mockHistory.EXPECT().SaveDownload(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.Download(context.Background(), duneBook, "")

	require.NoError(t, err)
	assert.Equal(t, target, outcome.SavedPath)
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new edition", string(content))
}

func TestDownloadService_Download_SanitizesName(t *testing.T) {
	tests := []struct {
		name      string
		book      models.Book
		suggested string
		want      string
	}{
		{name: "traversal", book: duneBook, suggested: "../../etc/passwd", want: "_.._etc_passwd"},
		{name: "separators", book: duneBook, suggested: "AC/DC: a biography.pdf", want: "AC_DC_ a biography.pdf"},
		{name: "empty falls back to title", book: duneBook, suggested: "", want: "Dune.epub"},
		{name: "unknown extension", book: models.Book{ID: "9", Title: "Notes", Extension: models.Unknown}, suggested: "..", want: "Notes"},
		{name: "nothing usable", book: models.Book{ID: "9", Title: "//"}, suggested: "", want: "book-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := t.TempDir()
			svc, mockAdapter, mockHistory, _ := newTestDownloadSvc(t, ctrl, config.ClientDownloads{Dir: dir})

			mockAdapter.EXPECT().DownloadBook(gomock.Any(), tt.book).Return(models.BookFile{Name: tt.suggested, Content: []byte("x")}, nil)
			mockHistory.EXPECT().SaveDownload(gomock.Any(), gomock.Any()).Return(nil)

			outcome, err := svc.Download(context.Background(), tt.book, "")

			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.want), outcome.SavedPath)
			assert.FileExists(t, outcome.SavedPath)
		})
	}
}

func TestDownloadService_Download_AdapterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	svc, mockAdapter, _, _ := newTestDownloadSvc(t, ctrl, config.ClientDownloads{Dir: dir})

	mockAdapter.EXPECT().DownloadBook(gomock.Any(), duneBook).
		Return(models.BookFile{}, fmt.Errorf("%w: Daily limit reached", adapter.ErrRejected))

	outcome, err := svc.Download(context.Background(), duneBook, "")

	assert.ErrorIs(t, err, ErrDownload)
	assert.ErrorIs(t, err, ErrServiceRejected)
	assert.Contains(t, err.Error(), "Daily limit reached")
	assert.Empty(t, outcome.SavedPath)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownloadService_Download_TargetDirUnusable(t *testing.T) {
	ctrl := gomock.NewController(t)
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	svc, _, _, _ := newTestDownloadSvc(t, ctrl, config.ClientDownloads{Dir: file})

	_, err := svc.Download(context.Background(), duneBook, "")

	assert.ErrorIs(t, err, ErrDownload)
}

func TestDownloadService_Download_HistoryFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockHistory, _ := newTestDownloadSvc(t, ctrl, config.ClientDownloads{Dir: t.TempDir()})

	mockAdapter.EXPECT().DownloadBook(gomock.Any(), gomock.Any()).Return(models.BookFile{Name: "Dune.epub", Content: []byte("x")}, nil)
	mockHistory.EXPECT().SaveDownload(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	outcome, err := svc.Download(context.Background(), duneBook, "")

	require.NoError(t, err)
	assert.FileExists(t, outcome.SavedPath)
}

// ── History ──────────────────────────────────────────────────────────────────

func TestDownloadService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockHistory, _ := newTestDownloadSvc(t, ctrl, config.ClientDownloads{HistoryLimit: 20})
	ctx := context.Background()

	records := []models.DownloadRecord{{ID: "b"}, {ID: "a"}}
	mockHistory.EXPECT().ListDownloads(ctx, 20).Return(records, nil)
	mockHistory.EXPECT().ListDownloads(ctx, 3).Return(records[:1], nil)

	got, err := svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	got, err = svc.History(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, records[:1], got)
}

func TestDownloadService_History_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockHistory, _ := newTestDownloadSvc(t, ctrl, config.ClientDownloads{HistoryLimit: 20})

	mockHistory.EXPECT().ListDownloads(gomock.Any(), 20).Return(nil, errors.New("no such table"))

	_, err := svc.History(context.Background(), 0)
	assert.ErrorIs(t, err, ErrHistory)
}

// ── Without history ──────────────────────────────────────────────────────────

func TestDownloadService_WithoutHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBookServiceAdapter(ctrl)
	dir := t.TempDir()
	svc := NewDownloadService(mockAdapter, nil, config.ClientDownloads{Dir: dir, HistoryLimit: 20}, logger.Nop())
	ctx := context.Background()

	mockAdapter.EXPECT().DownloadBook(ctx, duneBook).Return(models.BookFile{Name: "Dune.epub", Content: []byte("x")}, nil)

	outcome, err := svc.Download(ctx, duneBook, "")
	require.NoError(t, err)
	assert.FileExists(t, outcome.SavedPath)

	records, err := svc.History(ctx, 0)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, ErrHistory)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}
