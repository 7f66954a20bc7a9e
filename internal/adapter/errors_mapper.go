// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// twirpError is the JSON error body of a Twirp endpoint.
type twirpError struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var te twirpError
	if json.Unmarshal(resp.Body(), &te) == nil && te.Msg != "" {
		body = te.Msg
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrLiveKitUnauthorized, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrLiveKitUnavailable, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrDispatchRejected, resp.StatusCode(), body)
	}
}
