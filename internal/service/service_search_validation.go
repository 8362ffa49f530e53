package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-book-fetcher/models"
)

// SearchServiceWrapper decorates a SearchService with additional behavior.
type SearchServiceWrapper interface {
	Wrap(SearchService) SearchService
}

// SearchValidationService rejects queries that must not reach the network.
type SearchValidationService struct {
	inner SearchService
}

func NewSearchValidationService() SearchServiceWrapper {
	return &SearchValidationService{}
}

func (v *SearchValidationService) Wrap(inner SearchService) SearchService {
	v.inner = inner
	return v
}

func (v *SearchValidationService) Search(ctx context.Context, query models.SearchQuery) ([]models.Book, error) {
	query.Text = strings.TrimSpace(query.Text)
	if query.Text == "" {
		return nil, ErrEmptyQuery
	}

	return v.inner.Search(ctx, query)
}
