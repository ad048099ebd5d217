// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements prefsctl, the command-line client of the
// preferences server.
//
// It wires the cobra command tree, the client configuration, the rotated log
// file, the HTTP adapter and the terminal UI into a single process lifecycle.
package client
