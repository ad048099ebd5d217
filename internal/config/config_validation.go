// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if Value(cfg.Server.RequestTimeout) < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if Value(cfg.Server.RateLimitRPS) < 0 {
		return fmt.Errorf("%w: negative requests per second", ErrInvalidRateLimitConfigs)
	}

	if Value(cfg.Server.RateLimitRPS) > 0 && cfg.Server.RateLimitBurst < 1 {
		return fmt.Errorf("%w: burst must be positive when rate limiting is on", ErrInvalidRateLimitConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Log.File == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}
