package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-book-fetcher/internal/utils"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the JSON log destination.
	LogFile string
	// ShowHistory prints the download history and exits.
	ShowHistory bool
	// ShowVersion prints build info and exits.
	ShowVersion bool
}

// ClientAdapter holds network settings used by the book-service adapter.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the book service.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
	// RetryCount is the number of retries on HTTP 429.
	RetryCount int
	// UserAgent is sent with every request.
	UserAgent string
}

// ClientDB contains the download history database settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	// CredentialsFile is the credential cache path.
	CredentialsFile string
	// DB holds the history database settings.
	DB ClientDB
}

// ClientSearch holds the search defaults handed to the search service.
type ClientSearch struct {
	// Query is the auto-mode query; empty means interactive mode.
	Query string
	// Languages is the default language filter.
	Languages []string
	// Formats is the default format filter.
	Formats []string
	// Limit is the default number of results.
	Limit int
}

// ClientDownloads holds the settings handed to the download service.
type ClientDownloads struct {
	// Dir is the target directory for downloaded books.
	Dir string
	// CopyPathToClipboard copies the saved path after each download.
	CopyPathToClipboard bool
	// HistoryLimit is how many history entries -history prints.
	HistoryLimit int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Storage   ClientStorage
	Search    ClientSearch
	Downloads ClientDownloads
}

// GetClientConfig builds and validates the client config for the given
// command-line arguments (without the program name).
//
// It loads the merged config via [GetStructuredConfig], expands "~" in paths,
// normalizes the language and format lists and validates the result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:     utils.ExpandHome(cfg.App.LogFile),
			ShowHistory: cfg.App.ShowHistory,
			ShowVersion: cfg.App.ShowVersion,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    strings.TrimSpace(cfg.Adapter.HTTPAddress),
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
			UserAgent:      cfg.Adapter.UserAgent,
		},
		Storage: ClientStorage{
			CredentialsFile: utils.ExpandHome(cfg.Storage.CredentialsFile),
			DB: ClientDB{
				DSN: utils.ExpandHome(cfg.Storage.DB.DSN),
			},
		},
		Search: ClientSearch{
			Query:     strings.TrimSpace(cfg.Search.Query),
			Languages: normalizeList(cfg.Search.Languages),
			Formats:   normalizeList(cfg.Search.Formats),
			Limit:     cfg.Search.Limit,
		},
		Downloads: ClientDownloads{
			Dir:                 utils.ExpandHome(cfg.Downloads.Dir),
			CopyPathToClipboard: cfg.Downloads.CopyPathToClipboard,
			HistoryLimit:        cfg.Downloads.HistoryLimit,
		},
	}

	return clientCfg, clientCfg.validate()
}

// normalizeList trims and lower-cases every element, dropping empty ones.
// Elements may themselves contain commas (env and JSON sources).
func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range splitList(v) {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
