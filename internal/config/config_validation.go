// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Port)
	}

	_, rawPort, err := net.SplitHostPort(cfg.Server.HTTPAddress)
	if err != nil {
		return fmt.Errorf("%w: http address %q: %v", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err)
	}
	if port, err := strconv.Atoi(rawPort); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: http address %q has invalid port", ErrInvalidServerConfigs, cfg.Server.HTTPAddress)
	}

	if cfg.Server.GRPCAddress != "" {
		if _, _, err = net.SplitHostPort(cfg.Server.GRPCAddress); err != nil {
			return fmt.Errorf("%w: grpc address %q: %v", ErrInvalidServerConfigs, cfg.Server.GRPCAddress, err)
		}
	}

	if cfg.Server.DispatchRateLimit < 0 || cfg.Server.DispatchBurst < 0 {
		return fmt.Errorf("%w: negative dispatch rate limit", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.USDToINR <= 0 {
		return fmt.Errorf("%w: usd to inr rate must be positive", ErrInvalidAppConfigs)
	}

	p := cfg.Pricing
	if p.LiveKitSIP < 0 || p.DeepgramSTT < 0 || p.DeepgramTTS < 0 || p.GroqInput < 0 || p.GroqOutput < 0 || p.AvgTokensPerCall < 0 {
		return ErrInvalidPricingConfigs
	}

	if cfg.Workers.StaleCallAge < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
