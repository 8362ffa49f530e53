package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// ListValue holds a comma-separated list of values.
// It implements the flag.Value interface.
type ListValue []string

// String returns the list joined with commas.
func (l *ListValue) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set splits s on commas, trims every element and drops empty ones.
// A repeated flag replaces the previous value.
func (l *ListValue) Set(s string) error {
	*l = splitList(s)
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-q/-query search query; downloads the first result without prompting
//	-d/-download-dir directory downloaded books are written to
//	-l/-languages comma-separated language filter (e.g. "english,greek")
//	-f/-formats comma-separated format filter (e.g. "epub,pdf")
//	-limit number of results shown in interactive mode
//	-credentials-file path of the cached session credentials
//	-history-db path of the SQLite download history
//	-log-file path of the JSON log file
//	-a/-address book service base URL
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-retry-count retries for rate-limited requests
//	-copy-path copy the saved path to the clipboard after a download
//	-history print the download history and exit
//	-version print build info and exit
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("book-fetcher", flag.ContinueOnError)

	var query, downloadDir string
	var languages, formats ListValue
	var limit, retryCount int
	var credentialsFile, historyDB, logFile string
	var address string
	var requestTimeout time.Duration
	var copyPath, showHistory, showVersion bool
	var jsonConfigPath string

	fs.StringVar(&query, "q", "", "Search query for automatic download of the first result")
	fs.StringVar(&query, "query", "", "Search query for automatic download of the first result (alias)")
	fs.StringVar(&downloadDir, "d", "", "Download directory")
	fs.StringVar(&downloadDir, "download-dir", "", "Download directory (alias)")
	fs.Var(&languages, "l", "Comma-separated list of languages (e.g. 'english,greek,french')")
	fs.Var(&languages, "languages", "Comma-separated list of languages (alias)")
	fs.Var(&formats, "f", "Comma-separated list of formats (e.g. 'epub,pdf')")
	fs.Var(&formats, "formats", "Comma-separated list of formats (alias)")
	fs.IntVar(&limit, "limit", 0, "Number of results shown in interactive mode")
	fs.StringVar(&credentialsFile, "credentials-file", "", "Cached credentials file")
	fs.StringVar(&historyDB, "history-db", "", "Download history database file")
	fs.StringVar(&logFile, "log-file", "", "Log file")
	fs.StringVar(&address, "a", "", "Book service base URL")
	fs.StringVar(&address, "address", "", "Book service base URL (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&retryCount, "retry-count", 0, "Retries for rate-limited requests")
	fs.BoolVar(&copyPath, "copy-path", false, "Copy the saved path to the clipboard")
	fs.BoolVar(&showHistory, "history", false, "Print the download history and exit")
	fs.BoolVar(&showVersion, "version", false, "Print build info and exit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:     logFile,
			ShowHistory: showHistory,
			ShowVersion: showVersion,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Storage: Storage{
			CredentialsFile: credentialsFile,
			DB: DB{
				DSN: historyDB,
			},
		},
		Search: Search{
			Query:     query,
			Languages: languages,
			Formats:   formats,
			Limit:     limit,
		},
		Downloads: Downloads{
			Dir:                 downloadDir,
			CopyPathToClipboard: copyPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
