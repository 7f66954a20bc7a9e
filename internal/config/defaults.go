// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

const (
	DefaultPort              = 5001
	DefaultHost              = "0.0.0.0"
	DefaultDSN               = "calls.db"
	DefaultSettingsFile      = ".env"
	DefaultAgentFile         = "agent.yaml"
	DefaultDispatchAgentName = "outbound-caller"
	DefaultUSDToINR          = 83.0
)

// applyDefaults fills every field left zero by all configuration sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	if cfg.App.Version == "" {
		cfg.App.Version = "dev"
	}
	if cfg.App.AdminUser == "" {
		cfg.App.AdminUser = "admin"
	}
	if cfg.App.SettingsFile == "" {
		cfg.App.SettingsFile = DefaultSettingsFile
	}
	if cfg.App.AgentFile == "" {
		cfg.App.AgentFile = DefaultAgentFile
	}
	if cfg.App.DispatchAgentName == "" {
		cfg.App.DispatchAgentName = DefaultDispatchAgentName
	}
	if cfg.App.USDToINR == 0 {
		cfg.App.USDToINR = DefaultUSDToINR
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = net.JoinHostPort(DefaultHost, strconv.Itoa(cfg.Port))
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.DispatchRateLimit == 0 {
		cfg.Server.DispatchRateLimit = 1
	}
	if cfg.Server.DispatchBurst == 0 {
		cfg.Server.DispatchBurst = 5
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Adapter.TokenTTL == 0 {
		cfg.Adapter.TokenTTL = 10 * time.Minute
	}

	if cfg.Workers.ExchangeRateSchedule == "" {
		cfg.Workers.ExchangeRateSchedule = "@every 6h"
	}
	if cfg.Workers.StaleCallSchedule == "" {
		cfg.Workers.StaleCallSchedule = "@every 5m"
	}
	if cfg.Workers.StaleCallAge == 0 {
		cfg.Workers.StaleCallAge = 30 * time.Minute
	}

	if cfg.Pricing == (Pricing{}) {
		cfg.Pricing = DefaultPricing()
	}
}

// DefaultPricing returns provider list prices (USD).
func DefaultPricing() Pricing {
	return Pricing{
		LiveKitSIP:       0.010,
		DeepgramSTT:      0.0059,
		DeepgramTTS:      0.027,
		GroqInput:        0.00000059,
		GroqOutput:       0.00000079,
		AvgTokensPerCall: 2000,
	}
}
