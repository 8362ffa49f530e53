package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied when no other source sets a field.
const (
	DefaultHTTPAddress    = "https://z-library.sk"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryCount     = 3
	DefaultUserAgent      = "go-book-fetcher"
	DefaultSearchLimit    = 5
	DefaultHistoryLimit   = 20
)

var (
	// DefaultLanguages is the language filter used when none is configured.
	DefaultLanguages = []string{"english"}
	// DefaultFormats is the format filter used when none is configured.
	DefaultFormats = []string{"epub", "pdf"}
)

func defaultConfig() *StructuredConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &StructuredConfig{
		App: App{
			LogFile: filepath.Join(home, ".book-fetcher.log"),
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
			UserAgent:      DefaultUserAgent,
		},
		Storage: Storage{
			CredentialsFile: filepath.Join(home, ".zlibrary_credentials.json"),
			DB: DB{
				DSN: filepath.Join(home, ".book-fetcher.db"),
			},
		},
		Search: Search{
			Languages: append([]string(nil), DefaultLanguages...),
			Formats:   append([]string(nil), DefaultFormats...),
			Limit:     DefaultSearchLimit,
		},
		Downloads: Downloads{
			Dir:          filepath.Join(home, "Books"),
			HistoryLimit: DefaultHistoryLimit,
		},
	}
}
