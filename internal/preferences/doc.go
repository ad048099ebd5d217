// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package preferences describes the preferences of the web shell and
// resolves them.
//
// A preferences value is layered: [Defaults] sets every option, [Overrides]
// returns the deployment's override record, and optional override files are
// read with [ReadFile]. [Resolve] merges the layers in order; an option set in
// a higher layer always wins, and options no higher layer sets keep their
// default.
//
// Every layer uses the same typed schema ([Preferences]) so misspelled
// options fail to compile, and override documents are decoded strictly so
// unknown keys are rejected rather than ignored.
package preferences
