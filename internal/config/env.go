// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Nested groups are
// reached through their envPrefix tags, so the database DSN is read from
// STORAGE_DB_DATABASE_URI. Unset variables leave the field at its zero
// value for the lower-priority sources to fill.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}
