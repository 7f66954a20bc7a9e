// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/service"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
)

const exchangeRateWorkerName = "exchange_rate"

type exchangeRatePayload struct {
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRateWorker refreshes the USD to INR rate used by cost reports.
type ExchangeRateWorker struct {
	url    string
	client *utils.HTTPClient
	costs  service.CostService
	logger *logger.Logger
}

func NewExchangeRateWorker(url string, client *utils.HTTPClient, costs service.CostService, logger *logger.Logger) *ExchangeRateWorker {
	return &ExchangeRateWorker{url: url, client: client, costs: costs, logger: logger}
}

func (w *ExchangeRateWorker) Name() string { return exchangeRateWorkerName }

func (w *ExchangeRateWorker) Run(ctx context.Context) error {
	var payload exchangeRatePayload
	resp, err := w.client.R().
		SetContext(ctx).
		SetResult(&payload).
		ForceContentType("application/json").
		Get(w.url)
	if err != nil {
		return fmt.Errorf("fetch exchange rate: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrExchangeRateFeed, resp.StatusCode())
	}

	rate, ok := payload.Rates["INR"]
	if !ok {
		return ErrRateMissing
	}

	previous := w.costs.USDToINR()
	if err = w.costs.SetUSDToINR(rate); err != nil {
		return err
	}

	w.logger.Info().
		Float64("previous", previous).
		Float64("rate", rate).
		Msg("USD to INR rate updated")
	return nil
}
