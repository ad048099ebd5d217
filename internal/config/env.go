// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the `env` tags of [StructuredConfig]. A nil environ
// reads the process environment.
//
// Every malformed variable is reported, not only the first one.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err == nil {
		return nil
	}

	leaves := envErrors(err)
	if len(leaves) < 2 {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	msgs := make([]string, 0, len(leaves))
	for _, e := range leaves {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("error getting env configs (%d invalid): %s: %w",
		len(leaves), strings.Join(msgs, "; "), err)
}

// envErrors flattens nested env.AggregateError values.
func envErrors(err error) []error {
	var aggErr env.AggregateError
	if !errors.As(err, &aggErr) {
		return []error{err}
	}

	var leaves []error
	for _, e := range aggErr.Errors {
		leaves = append(leaves, envErrors(e)...)
	}
	return leaves
}
