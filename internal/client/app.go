package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/service"
	"github.com/MKhiriev/go-book-fetcher/internal/tui"
	"github.com/MKhiriev/go-book-fetcher/models"
)

// App is the top-level [Client].
type App struct {
	services   *service.ClientServices
	controller *Controller
	term       tui.Terminal
	cfg        *config.ClientConfig
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp assembles the application from already constructed services.
func NewApp(
	services *service.ClientServices,
	term tui.Terminal,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || services.SessionService == nil || services.SearchService == nil ||
		services.DownloadService == nil || term == nil || cfg == nil {
		return nil, ErrNilDependency
	}

	return &App{
		services:   services,
		controller: NewController(services.SearchService, services.DownloadService, term, logger),
		term:       term,
		cfg:        cfg,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

// Run executes the configured mode. Version and history listings need no
// session. An error wrapping [service.ErrAuth] means no session could be
// established; cancellation of ctx during the interactive loop is a normal
// exit.
func (a *App) Run(ctx context.Context) error {
	switch {
	case a.cfg.App.ShowVersion:
		a.term.Print(tui.RenderBuildInfo(a.buildInfo))
		return nil
	case a.cfg.App.ShowHistory:
		return a.controller.ShowHistory(ctx, a.cfg.Downloads.HistoryLimit)
	}

	session, err := a.services.SessionService.Establish(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("session not established")
		return fmt.Errorf("establish session: %w", err)
	}
	a.logger.Info().
		Str("func", "App.Run").
		Str("user_id", session.Profile.ID.String()).
		Str("source", string(session.Source)).
		Msg("session established")

	if query := a.cfg.Search.Query; query != "" {
		a.controller.AutoDownload(ctx, query)
		return nil
	}

	return a.controller.Interactive(ctx)
}
