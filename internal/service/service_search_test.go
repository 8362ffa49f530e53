package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-book-fetcher/internal/adapter"
	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/mock"
	"github.com/MKhiriev/go-book-fetcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSearchDefaults = config.ClientSearch{
	Languages: []string{"english"},
	Formats:   []string{"epub", "pdf"},
	Limit:     5,
}

func newTestSearchSvc(t *testing.T, ctrl *gomock.Controller) (SearchService, *mock.MockBookServiceAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockBookServiceAdapter(ctrl)
	return NewSearchService(mockAdapter, testSearchDefaults, logger.Nop()), mockAdapter
}

func TestSearchService_Search_FillsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestSearchSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Search(ctx, models.SearchQuery{
		Text:      "dune",
		Languages: []string{"english"},
		Formats:   []string{"epub", "pdf"},
		Limit:     5,
	}).Return([]models.RawBook{{ID: "1", Hash: "a", Title: "Dune"}}, nil).Times(1)

	books, err := svc.Search(ctx, models.SearchQuery{Text: "  dune "})

	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestSearchService_Search_KeepsExplicitFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestSearchSvc(t, ctrl)
	ctx := context.Background()

	query := models.SearchQuery{
		Text:      "foundation",
		Languages: []string{"russian"},
		Formats:   []string{"fb2"},
		Limit:     1,
	}
	mockAdapter.EXPECT().Search(ctx, query).Return(nil, nil)

	_, err := svc.Search(ctx, query)
	require.NoError(t, err)
}

func TestSearchService_Search_NormalizesPlaceholders(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestSearchSvc(t, ctrl)

	mockAdapter.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.RawBook{
		{ID: "1", Hash: "a1", Title: "Dune", Author: "Frank Herbert", Extension: "epub", FilesizeString: "1.2 MB", Language: "english"},
		{ID: "2", Hash: "b2", Title: "  ", Author: ""},
	}, nil)

	books, err := svc.Search(context.Background(), models.SearchQuery{Text: "dune"})

	require.NoError(t, err)
	assert.Equal(t, []models.Book{
		{ID: "1", Hash: "a1", Title: "Dune", Author: "Frank Herbert", Extension: "epub", SizeDescription: "1.2 MB", Language: "english"},
		{ID: "2", Hash: "b2", Title: "No title", Author: "Unknown", Extension: "Unknown", SizeDescription: "Unknown size", Language: "Unknown"},
	}, books)
}

func TestSearchService_Search_TrimsToLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestSearchSvc(t, ctrl)

	raw := make([]models.RawBook, 8)
	for i := range raw {
		raw[i] = models.RawBook{ID: models.ExternalID(fmt.Sprint(i + 1)), Title: fmt.Sprintf("Book %d", i+1)}
	}
	mockAdapter.EXPECT().Search(gomock.Any(), gomock.Any()).Return(raw, nil)

	books, err := svc.Search(context.Background(), models.SearchQuery{Text: "book", Limit: 3})

	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "Book 1", books[0].Title)
	assert.Equal(t, "Book 3", books[2].Title)
}

func TestSearchService_Search_ZeroMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestSearchSvc(t, ctrl)

	mockAdapter.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.RawBook{}, nil)

	books, err := svc.Search(context.Background(), models.SearchQuery{Text: "zzz-nonexistent"})

	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestSearchService_Search_EmptyQueryNeverCallsAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestSearchSvc(t, ctrl)

	for _, text := range []string{"", "   "} {
		books, err := svc.Search(context.Background(), models.SearchQuery{Text: text})
		assert.Nil(t, books)
		assert.ErrorIs(t, err, ErrEmptyQuery)
		assert.ErrorIs(t, err, ErrSearch)
	}
}

func TestSearchService_Search_AdapterErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "rate limited", err: fmt.Errorf("%w: ", adapter.ErrTooManyRequests), wantErr: ErrRateLimited},
		{name: "session expired", err: fmt.Errorf("%w: Please login", adapter.ErrRejected), wantErr: ErrServiceRejected},
		{name: "server down", err: fmt.Errorf("%w: http 502: ", adapter.ErrServiceFailure), wantErr: ErrServiceUnavailable},
		{name: "transport", err: context.DeadlineExceeded, wantErr: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter := newTestSearchSvc(t, ctrl)

			mockAdapter.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			books, err := svc.Search(context.Background(), models.SearchQuery{Text: "dune"})

			assert.Nil(t, books)
			assert.ErrorIs(t, err, ErrSearch)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
