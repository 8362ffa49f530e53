// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(withScheme(cfg.Adapter.HTTPAddress)); err != nil || u.Host == "" {
		return fmt.Errorf("%w: bad address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Storage.CredentialsFile == "" || cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Search.Limit <= 0 || len(cfg.Search.Formats) == 0 {
		return ErrInvalidSearchConfigs
	}

	if cfg.Downloads.Dir == "" || cfg.Downloads.HistoryLimit <= 0 {
		return ErrInvalidDownloadConfigs
	}

	return nil
}

func withScheme(raw string) string {
	if !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}
