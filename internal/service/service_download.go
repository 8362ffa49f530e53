package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-book-fetcher/internal/adapter"
	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/store"
	"github.com/MKhiriev/go-book-fetcher/internal/utils"
	"github.com/MKhiriev/go-book-fetcher/models"
	"github.com/atotto/clipboard"
)

const downloadDirMode = 0o755

type downloadService struct {
	adapter adapter.BookServiceAdapter
	history store.DownloadHistoryRepository
	cfg     config.ClientDownloads
	logger  *logger.Logger

	copyToClipboard func(string) error
	now             func() time.Time
}

// NewDownloadService returns a [DownloadService] writing into cfg.Dir unless
// a directory is given per call.
func NewDownloadService(
	bookAdapter adapter.BookServiceAdapter,
	history store.DownloadHistoryRepository,
	cfg config.ClientDownloads,
	logger *logger.Logger,
) DownloadService {
	return &downloadService{
		adapter:         bookAdapter,
		history:         history,
		cfg:             cfg,
		logger:          logger,
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
	}
}

func (s *downloadService) Download(ctx context.Context, book models.Book, targetDir string) (models.DownloadOutcome, error) {
	if targetDir == "" {
		targetDir = s.cfg.Dir
	}
	if err := os.MkdirAll(targetDir, downloadDirMode); err != nil {
		return models.DownloadOutcome{}, fmt.Errorf("%w: create %s: %w", ErrDownload, targetDir, err)
	}

	file, err := s.adapter.DownloadBook(ctx, book)
	if err != nil {
		s.logger.Err(err).
			Str("func", "downloadService.Download").
			Str("book_id", book.ID.String()).
			Msg("failed to fetch book")
		return models.DownloadOutcome{}, fmt.Errorf("%w: %w", ErrDownload, mapAdapterError(err))
	}

	path := filepath.Join(targetDir, fileNameFor(book, file.Name))
	if err = writeFileReplacing(targetDir, path, file.Content); err != nil {
		s.logger.Err(err).Str("func", "downloadService.Download").Str("path", path).Msg("failed to write book")
		return models.DownloadOutcome{}, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	s.record(ctx, book, path)
	if s.cfg.CopyPathToClipboard {
		if err = s.copyToClipboard(path); err != nil {
			s.logger.Warn().Err(err).Str("func", "downloadService.Download").Msg("failed to copy path to clipboard")
		}
	}

	s.logger.Info().
		Str("func", "downloadService.Download").
		Str("book_id", book.ID.String()).
		Str("path", path).
		Int("bytes", len(file.Content)).
		Msg("book saved")
	return models.DownloadOutcome{SavedPath: path}, nil
}

func (s *downloadService) History(ctx context.Context, limit int) ([]models.DownloadRecord, error) {
	if s.history == nil {
		return nil, fmt.Errorf("%w: %w", ErrHistory, ErrHistoryDisabled)
	}
	if limit <= 0 {
		limit = s.cfg.HistoryLimit
	}

	records, err := s.history.ListDownloads(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistory, err)
	}
	return records, nil
}

func (s *downloadService) record(ctx context.Context, book models.Book, path string) {
	if s.history == nil {
		return
	}

	err := s.history.SaveDownload(ctx, models.DownloadRecord{
		ID:           utils.NewID(),
		BookID:       book.ID,
		Title:        book.Title,
		Author:       book.Author,
		Extension:    book.Extension,
		SavedPath:    path,
		DownloadedAt: s.now(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "downloadService.record").Msg("failed to record download")
	}
}

// fileNameFor picks a single safe path element: the service's suggestion,
// then "<title>.<extension>", then the book id.
func fileNameFor(book models.Book, suggested string) string {
	if name := utils.SanitizeFileName(suggested); name != "" {
		return name
	}

	fallback := book.Title
	if book.Extension != "" && book.Extension != models.Unknown {
		fallback += "." + book.Extension
	}
	if name := utils.SanitizeFileName(fallback); name != "" {
		return name
	}

	return "book-" + utils.SanitizeFileName(book.ID.String())
}

// writeFileReplacing writes content to a temp file in dir and renames it onto
// path. An existing file at path is replaced.
func writeFileReplacing(dir, path string, content []byte) (err error) {
	tmp, err := os.CreateTemp(dir, ".download-*.part")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move into place: %w", err)
	}

	return nil
}
