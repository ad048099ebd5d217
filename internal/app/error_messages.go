// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// preferences server handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording of the API consistent.
package app

const (
	// MsgPreferencesUnavailable is returned when the resolved preferences
	// cannot be produced.
	MsgPreferencesUnavailable = "error getting preferences"

	MsgDefaultsUnavailable  = "error getting default preferences"
	MsgOverridesUnavailable = "error getting preference overrides"

	// MsgSectionUnavailable covers both unknown section names (404) and
	// unexpected failures (500).
	MsgSectionUnavailable = "error getting preferences section"

	// MsgRateLimitExceeded accompanies 429 responses.
	MsgRateLimitExceeded = "rate limit exceeded, please retry shortly"

	// MsgInvalidGzipBody is returned when a request declares gzip
	// Content-Encoding but its body is not a valid gzip stream.
	MsgInvalidGzipBody = "invalid gzip data"
)
