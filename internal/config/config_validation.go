// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged configuration. Server-only requirements are
// checked by [ServerConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Cookie.TTLDays < 0 {
		return fmt.Errorf("%w: ttl must not be negative, got %d", ErrInvalidCookieConfigs, cfg.Cookie.TTLDays)
	}
	if strings.ContainsAny(cfg.Cookie.Name, "=; \t\r\n") {
		return fmt.Errorf("%w: name %q contains a separator", ErrInvalidCookieConfigs, cfg.Cookie.Name)
	}
	if cfg.Workers.SweepInterval < 0 {
		return fmt.Errorf("%w: sweep interval must be positive", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
