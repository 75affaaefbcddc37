// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.RecentFile) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Catalog.DSN) == "" || cfg.Catalog.Timeout < 0 {
		return ErrInvalidCatalogConfigs
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
