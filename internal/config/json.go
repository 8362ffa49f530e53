package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
		UserAgent      string   `json:"user_agent"`
	} `json:"adapter,omitempty"`

	Storage struct {
		CredentialsFile string `json:"credentials_file"`
		DB              struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Search struct {
		Languages []string `json:"languages"`
		Formats   []string `json:"formats"`
		Limit     int      `json:"limit"`
	} `json:"search,omitempty"`

	Downloads struct {
		Dir                 string `json:"dir"`
		CopyPathToClipboard bool   `json:"copy_path"`
		HistoryLimit        int    `json:"history_limit"`
	} `json:"downloads,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:     jsonCfg.Adapter.RetryCount,
			UserAgent:      jsonCfg.Adapter.UserAgent,
		},
		Storage: Storage{
			CredentialsFile: jsonCfg.Storage.CredentialsFile,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Search: Search{
			Languages: jsonCfg.Search.Languages,
			Formats:   jsonCfg.Search.Formats,
			Limit:     jsonCfg.Search.Limit,
		},
		Downloads: Downloads{
			Dir:                 jsonCfg.Downloads.Dir,
			CopyPathToClipboard: jsonCfg.Downloads.CopyPathToClipboard,
			HistoryLimit:        jsonCfg.Downloads.HistoryLimit,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
