// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

// createDispatchPath is the Twirp route of AgentDispatchService.CreateDispatch.
const createDispatchPath = "/twirp/livekit.AgentDispatchService/CreateDispatch"

type liveKitAdapter struct {
	client *utils.HTTPClient
	cfg    config.Adapter
	logger *logger.Logger
}

// NewLiveKitAdapter constructs the Twirp/JSON implementation of
// [DispatchAdapter] with the request timeout and token lifetime of cfg.
func NewLiveKitAdapter(cfg config.Adapter, logger *logger.Logger) DispatchAdapter {
	logger.Debug().Msg("creating LiveKit adapter")
	return &liveKitAdapter{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		cfg:    cfg,
		logger: logger,
	}
}

// dispatchResponse is the Twirp JSON form of livekit.AgentDispatch.
type dispatchResponse struct {
	ID        string `json:"id"`
	AgentName string `json:"agent_name"`
	Room      string `json:"room"`
	Metadata  string `json:"metadata"`
}

func (a *liveKitAdapter) CreateDispatch(ctx context.Context, creds models.LiveKitCredentials, req models.DispatchRequest) (models.Dispatch, error) {
	log := logger.FromContext(ctx)

	baseURL, err := normalizeBaseURL(creds.URL)
	if err != nil {
		return models.Dispatch{}, fmt.Errorf("%w: %w", ErrInvalidLiveKitURL, err)
	}

	token, err := utils.GenerateLiveKitToken(creds.APIKey, creds.APISecret, req.Room, a.cfg.TokenTTL)
	if err != nil {
		return models.Dispatch{}, fmt.Errorf("create dispatch token: %w", err)
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(baseURL + createDispatchPath)
	if err != nil {
		log.Err(err).Str("func", "*liveKitAdapter.CreateDispatch").Str("room", req.Room).Msg("LiveKit request failed")
		return models.Dispatch{}, fmt.Errorf("%w: %w", ErrLiveKitUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode()).Str("room", req.Room).Msg("LiveKit refused dispatch")
		return models.Dispatch{}, err
	}

	var d dispatchResponse
	if err = json.Unmarshal(resp.Body(), &d); err != nil {
		return models.Dispatch{}, fmt.Errorf("decode dispatch response: %w", err)
	}

	return models.Dispatch{ID: d.ID, AgentName: d.AgentName, Room: d.Room, Metadata: d.Metadata}, nil
}

// normalizeBaseURL turns a LiveKit client URL (usually wss://) into the
// HTTP base URL of its server API.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "wss":
		u.Scheme = "https"
	case "ws":
		u.Scheme = "http"
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
