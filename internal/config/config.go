// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BOOKS_"

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging environment variables,
// command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level switches such as the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the book-service endpoint and HTTP client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the credential cache path and the history database DSN.
	Storage Storage `envPrefix:"STORAGE_"`

	// Search holds search defaults and the auto-mode query.
	Search Search `envPrefix:"SEARCH_"`

	// Downloads holds the download directory and post-download behaviour.
	Downloads Downloads `envPrefix:"DOWNLOADS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: BOOKS_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file receiving JSON log lines.
	// Env: BOOKS_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// ShowHistory makes the client print the download history and exit.
	ShowHistory bool

	// ShowVersion makes the client print build info and exit.
	ShowVersion bool
}

// Adapter holds settings of the outbound book-service client.
type Adapter struct {
	// HTTPAddress is the base URL of the book service
	// (e.g. "https://z-library.sk").
	// Env: BOOKS_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: BOOKS_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a rate-limited request is retried.
	// Env: BOOKS_ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// UserAgent is sent with every request.
	// Env: BOOKS_ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// CredentialsFile is the JSON file caching the session token pair.
	// Env: BOOKS_STORAGE_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	// DB holds the download history database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite download history.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: BOOKS_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Search holds search settings.
type Search struct {
	// Query switches the client to auto mode: the first result is downloaded
	// without any prompt.
	// Env: BOOKS_SEARCH_QUERY
	Query string `env:"QUERY"`

	// Languages filters results by language.
	// Env: BOOKS_SEARCH_LANGUAGES (comma-separated)
	Languages []string `env:"LANGUAGES"`

	// Formats filters results by file extension.
	// Env: BOOKS_SEARCH_FORMATS (comma-separated)
	Formats []string `env:"FORMATS"`

	// Limit is the number of results shown in interactive mode.
	// Env: BOOKS_SEARCH_LIMIT
	Limit int `env:"LIMIT"`
}

// Downloads holds download settings.
type Downloads struct {
	// Dir is the directory downloaded books are written to.
	// Env: BOOKS_DOWNLOADS_DIR
	Dir string `env:"DIR"`

	// CopyPathToClipboard copies the saved path to the clipboard after a
	// successful download.
	// Env: BOOKS_DOWNLOADS_COPY_PATH
	CopyPathToClipboard bool `env:"COPY_PATH"`

	// HistoryLimit is how many entries -history prints.
	// Env: BOOKS_DOWNLOADS_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// for the given command-line arguments (without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
