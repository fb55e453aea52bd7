// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config is shared by both binaries, so only rules that hold
// for every role live here; role-specific checks belong to the narrowed
// views ([ClientConfig.validate]).
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.BatchSize < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Interval <= 0 || cfg.Sync.Throttle <= 0 || cfg.Sync.BatchSize <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
