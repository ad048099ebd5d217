// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get its whole API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. A non-empty userAgent is sent
// with every request.
//
//	client := utils.NewHTTPClient("prefsctl")
//	resp, err := client.R().Get("http://localhost:8080/api/version")
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New()
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
