// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the preferences service address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientLog holds client log settings.
type ClientLog struct {
	// File is the path of the rotated log file.
	File string
}

// ClientConfig is the top-level prefsctl configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the client transport address and timeout.
	Adapter ClientAdapter
	// Log contains the client log destination.
	Log ClientLog
}

// GetClientConfig builds and validates the client config view.
//
// Sources are merged as defaults, environment, JSON file and finally
// overrides, which carries values of the prefsctl command-line flags. Zero
// fields of overrides are ignored.
func GetClientConfig(overrides ClientAdapter) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withConfig(defaultConfig()).
		withEnv().
		withJSON().
		withConfig(&StructuredConfig{Adapter: Adapter{
			HTTPAddress:    overrides.HTTPAddress,
			RequestTimeout: overrides.RequestTimeout,
		}}).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{File: cfg.Adapter.LogFile},
	}

	return clientCfg, clientCfg.validate()
}
