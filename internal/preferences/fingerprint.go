// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a stable hex digest of p.
//
// The shell keys its cached preferences by this value, so any change of the
// configuration invalidates what browsers have stored. The HTTP layer also
// serves it as the ETag of the resolved document.
func Fingerprint(p Preferences) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("error encoding preferences: %w", err)
	}

	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
