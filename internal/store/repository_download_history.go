package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/utils"
	"github.com/MKhiriev/go-book-fetcher/models"
)

type downloadHistoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewDownloadHistoryRepository(db *DB, logger *logger.Logger) DownloadHistoryRepository {
	return &downloadHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDownload inserts one history row. An empty record ID is replaced with
// a fresh UUIDv7.
func (r *downloadHistoryRepository) SaveDownload(ctx context.Context, rec models.DownloadRecord) error {
	if rec.ID == "" {
		rec.ID = utils.NewID()
	}

	query, args, err := buildInsertDownloadQuery(rec)
	if err != nil {
		r.logger.Err(err).Str("func", "downloadHistoryRepository.SaveDownload").Msg("failed to build insert query")
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "downloadHistoryRepository.SaveDownload").
			Str("book_id", rec.BookID.String()).
			Msg("failed to insert download record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDownloadNotSaved
	}

	r.logger.Debug().Str("func", "downloadHistoryRepository.SaveDownload").
		Str("id", rec.ID).Str("path", rec.SavedPath).Msg("download recorded")
	return nil
}

// ListDownloads returns up to limit records, most recent first. A
// non-positive limit returns every record.
func (r *downloadHistoryRepository) ListDownloads(ctx context.Context, limit int) ([]models.DownloadRecord, error) {
	query, args, err := buildListDownloadsQuery(limit)
	if err != nil {
		r.logger.Err(err).Str("func", "downloadHistoryRepository.ListDownloads").Msg("failed to build select query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "downloadHistoryRepository.ListDownloads").
			Int("limit", limit).
			Msg("failed to query download history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.DownloadRecord, 0)
	for rows.Next() {
		var rec models.DownloadRecord
		if err = rows.Scan(
			&rec.ID,
			&rec.BookID,
			&rec.Title,
			&rec.Author,
			&rec.Extension,
			&rec.SavedPath,
			&rec.DownloadedAt,
		); err != nil {
			r.logger.Err(err).Str("func", "downloadHistoryRepository.ListDownloads").Msg("failed to scan download row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
