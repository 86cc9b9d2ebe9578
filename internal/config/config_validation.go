// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// tracker invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// validate checks the merged [TrainerConfig]. Publishing settings are only
// required when a tracker URL is configured at all; a purely local trainer
// run needs nothing beyond defaults.
func (cfg *TrainerConfig) validate() error {
	if strings.TrimSpace(cfg.Tracker.BaseURL) != "" && cfg.Tracker.Login == "" {
		return ErrInvalidTrackerConfigs
	}

	return nil
}
