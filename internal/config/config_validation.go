// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// MaxPageSize bounds [UI.PageSize].
const MaxPageSize = 500

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// [ErrInvalidStorageConfigs], [ErrInvalidUIConfigs] or [ErrInvalidAppConfigs].
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.BusyTimeout < 0 {
		return fmt.Errorf("%w: negative busy timeout %s", ErrInvalidStorageConfigs, cfg.Storage.DB.BusyTimeout)
	}

	if cfg.UI.PageSize < 1 || cfg.UI.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size %d out of range [1, %d]", ErrInvalidUIConfigs, cfg.UI.PageSize, MaxPageSize)
	}
	if cfg.UI.MaxImages < 1 {
		return fmt.Errorf("%w: max images must be positive, got %d", ErrInvalidUIConfigs, cfg.UI.MaxImages)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
