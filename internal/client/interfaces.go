// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and blocks until the command exits.
	Run(ctx context.Context, args []string) error
}

// Browser runs an interactive view over the preferences.
type Browser interface {
	Browse(ctx context.Context) error
}
