package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-book-fetcher/internal/adapter"
	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/models"
)

type searchService struct {
	adapter  adapter.BookServiceAdapter
	defaults config.ClientSearch
	logger   *logger.Logger
}

// NewSearchService returns a [SearchService] that fills zero query fields
// from defaults. Queries pass through [NewSearchValidationService] first.
func NewSearchService(bookAdapter adapter.BookServiceAdapter, defaults config.ClientSearch, logger *logger.Logger) SearchService {
	return NewSearchValidationService().Wrap(&searchService{
		adapter:  bookAdapter,
		defaults: defaults,
		logger:   logger,
	})
}

func (s *searchService) Search(ctx context.Context, query models.SearchQuery) ([]models.Book, error) {
	query = s.withDefaults(query)

	raw, err := s.adapter.Search(ctx, query)
	if err != nil {
		s.logger.Err(err).
			Str("func", "searchService.Search").
			Str("query", query.Text).
			Msg("search request failed")
		return nil, fmt.Errorf("%w: %w", ErrSearch, mapAdapterError(err))
	}

	books := make([]models.Book, 0, min(len(raw), query.Limit))
	for _, r := range raw {
		if len(books) == query.Limit {
			break
		}
		books = append(books, normalizeBook(r))
	}

	s.logger.Debug().
		Str("func", "searchService.Search").
		Str("query", query.Text).
		Int("received", len(raw)).
		Int("returned", len(books)).
		Msg("search finished")
	return books, nil
}

func (s *searchService) withDefaults(query models.SearchQuery) models.SearchQuery {
	if len(query.Languages) == 0 {
		query.Languages = slices.Clone(s.defaults.Languages)
	}
	if len(query.Formats) == 0 {
		query.Formats = slices.Clone(s.defaults.Formats)
	}
	if query.Limit <= 0 {
		query.Limit = s.defaults.Limit
	}
	if query.Limit <= 0 {
		query.Limit = config.DefaultSearchLimit
	}
	return query
}

func normalizeBook(r models.RawBook) models.Book {
	return models.Book{
		ID:              r.ID,
		Hash:            strings.TrimSpace(r.Hash),
		Title:           orPlaceholder(r.Title, models.NoTitle),
		Author:          orPlaceholder(r.Author, models.Unknown),
		Extension:       orPlaceholder(r.Extension, models.Unknown),
		SizeDescription: orPlaceholder(r.FilesizeString, models.UnknownSize),
		Language:        orPlaceholder(r.Language, models.Unknown),
	}
}

func orPlaceholder(v, placeholder string) string {
	if v = strings.TrimSpace(v); v == "" {
		return placeholder
	}
	return v
}
