package service

import (
	"github.com/MKhiriev/go-book-fetcher/internal/adapter"
	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/store"
	"github.com/MKhiriev/go-book-fetcher/internal/tui"
)

type ClientServices struct {
	SessionService  SessionService
	SearchService   SearchService
	DownloadService DownloadService
}

func NewClientServices(
	bookAdapter adapter.BookServiceAdapter,
	storages *store.ClientStorages,
	term tui.Terminal,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		SessionService:  NewSessionService(bookAdapter, storages.Credentials, term, logger),
		SearchService:   NewSearchService(bookAdapter, cfg.Search, logger),
		DownloadService: NewDownloadService(bookAdapter, storages.DownloadHistory, cfg.Downloads, logger),
	}
}
