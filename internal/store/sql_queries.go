package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-fetcher/models"
)

var downloadColumns = []string{
	"id",
	"book_id",
	"title",
	"author",
	"extension",
	"saved_path",
	"downloaded_at",
}

// sqlite uses ? placeholders
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertDownloadQuery(rec models.DownloadRecord) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert(models.DownloadRecord{}.TableName()).
		Columns(downloadColumns...).
		Values(
			rec.ID,
			rec.BookID.String(),
			rec.Title,
			rec.Author,
			rec.Extension,
			rec.SavedPath,
			rec.DownloadedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListDownloadsQuery(limit int) (string, []any, error) {
	builder := sqliteBuilder.
		Select(downloadColumns...).
		From(models.DownloadRecord{}.TableName()).
		OrderBy("downloaded_at DESC", "rowid DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
