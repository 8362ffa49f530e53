package client

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-fetcher/internal/app"
	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/mock"
	"github.com/MKhiriev/go-book-fetcher/internal/service"
	"github.com/MKhiriev/go-book-fetcher/internal/testutil"
	"github.com/MKhiriev/go-book-fetcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testApp struct {
	app      *App
	session  *mock.MockSessionService
	search   *mock.MockSearchService
	download *mock.MockDownloadService
	term     *testutil.ScriptedTerminal
}

func newTestApp(t *testing.T, ctrl *gomock.Controller, cfg *config.ClientConfig, answers ...string) testApp {
	t.Helper()
	ta := testApp{
		session:  mock.NewMockSessionService(ctrl),
		search:   mock.NewMockSearchService(ctrl),
		download: mock.NewMockDownloadService(ctrl),
		term:     testutil.NewScriptedTerminal(answers...),
	}

	a, err := NewApp(&service.ClientServices{
		SessionService:  ta.session,
		SearchService:   ta.search,
		DownloadService: ta.download,
	}, ta.term, cfg, models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)
	ta.app = a

	return ta
}

var testSession = models.Session{
	Profile: models.Profile{ID: "42", Email: "reader@example.com"},
	Source:  models.SessionSourceCached,
}

func TestNewApp_NilDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	term := testutil.NewScriptedTerminal()
	full := &service.ClientServices{
		SessionService:  mock.NewMockSessionService(ctrl),
		SearchService:   mock.NewMockSearchService(ctrl),
		DownloadService: mock.NewMockDownloadService(ctrl),
	}

	tests := []struct {
		name     string
		services *service.ClientServices
		term     *testutil.ScriptedTerminal
		cfg      *config.ClientConfig
	}{
		{name: "nil services", services: nil, term: term, cfg: &config.ClientConfig{}},
		{name: "missing session", services: &service.ClientServices{SearchService: full.SearchService, DownloadService: full.DownloadService}, term: term, cfg: &config.ClientConfig{}},
		{name: "nil config", services: full, term: term, cfg: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewApp(tt.services, tt.term, tt.cfg, models.AppBuildInfo{}, logger.Nop())
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrNilDependency)
		})
	}
}

func TestApp_Run_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, &config.ClientConfig{App: config.ClientApp{ShowVersion: true}})

	require.NoError(t, ta.app.Run(context.Background()))

	out := ta.term.OutputText()
	assert.Contains(t, out, "Build version: v1.2.0")
	assert.Contains(t, out, "Build commit: abc123")
}

func TestApp_Run_HistoryNeedsNoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, &config.ClientConfig{
		App:       config.ClientApp{ShowHistory: true},
		Downloads: config.ClientDownloads{HistoryLimit: 10},
	})

	ta.download.EXPECT().History(gomock.Any(), 10).Return([]models.DownloadRecord{}, nil)

	require.NoError(t, ta.app.Run(context.Background()))
	assert.Equal(t, []string{"No downloads recorded yet."}, ta.term.Output())
}

func TestApp_Run_AuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, &config.ClientConfig{})

	ta.session.EXPECT().Establish(gomock.Any()).Return(models.Session{}, service.ErrAuthAbandoned)

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrAuth)
	assert.Empty(t, ta.term.Prompts())
}

func TestApp_Run_AutoMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, &config.ClientConfig{Search: config.ClientSearch{Query: "foundation", Limit: 5}})
	ctx := context.Background()

	foundation := models.Book{ID: "7", Hash: "f7", Title: "Foundation"}
	gomock.InOrder(
		ta.session.EXPECT().Establish(ctx).Return(testSession, nil),
		ta.search.EXPECT().Search(ctx, models.SearchQuery{Text: "foundation", Limit: 1}).Return([]models.Book{foundation}, nil),
		ta.download.EXPECT().Download(ctx, foundation, "").Return(models.DownloadOutcome{SavedPath: "/books/Foundation.epub"}, nil),
	)

	require.NoError(t, ta.app.Run(ctx))
	assert.Empty(t, ta.term.Prompts())
	assert.Contains(t, ta.term.Output(), "Found book: Foundation")
}

func TestApp_Run_InteractiveMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, &config.ClientConfig{}, "quit")

	ta.session.EXPECT().Establish(gomock.Any()).Return(testSession, nil)

	require.NoError(t, ta.app.Run(context.Background()))
	assert.Equal(t, []string{app.PromptQuery}, ta.term.Prompts())
}
