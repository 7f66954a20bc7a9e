// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for every
// outbound call of the dashboard (LiveKit API, exchange rate feed).
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that sends and expects JSON and gives
// up after timeout. A non-positive timeout leaves resty's default.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get("https://open.er-api.com/v6/latest/USD")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "voice-dashboard")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
