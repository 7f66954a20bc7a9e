// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Port int `json:"port"`

	App struct {
		Version           string  `json:"version"`
		LogLevel          string  `json:"log_level"`
		AdminUser         string  `json:"admin_user"`
		AdminPasswordHash string  `json:"admin_password_hash"`
		SettingsFile      string  `json:"settings_file"`
		AgentFile         string  `json:"agent_file"`
		DispatchAgentName string  `json:"dispatch_agent_name"`
		USDToINR          float64 `json:"usd_to_inr"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		GRPCAddress       string   `json:"grpc_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
		DispatchRateLimit float64  `json:"dispatch_rate_limit"`
		DispatchBurst     int      `json:"dispatch_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		TokenTTL       Duration `json:"token_ttl"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ExchangeRateURL      string   `json:"exchange_rate_url"`
		ExchangeRateSchedule string   `json:"exchange_rate_schedule"`
		StaleCallSchedule    string   `json:"stale_call_schedule"`
		StaleCallAge         Duration `json:"stale_call_age"`
	} `json:"workers,omitempty"`

	Pricing struct {
		LiveKitSIP       float64 `json:"livekit_sip"`
		DeepgramSTT      float64 `json:"deepgram_stt"`
		DeepgramTTS      float64 `json:"deepgram_tts"`
		GroqInput        float64 `json:"groq_input"`
		GroqOutput       float64 `json:"groq_output"`
		AvgTokensPerCall int     `json:"avg_tokens_per_call"`
	} `json:"pricing,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Port: jsonCfg.Port,
		App: App{
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
			AdminUser:         jsonCfg.App.AdminUser,
			AdminPasswordHash: jsonCfg.App.AdminPasswordHash,
			SettingsFile:      jsonCfg.App.SettingsFile,
			AgentFile:         jsonCfg.App.AgentFile,
			DispatchAgentName: jsonCfg.App.DispatchAgentName,
			USDToINR:          jsonCfg.App.USDToINR,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			GRPCAddress:       jsonCfg.Server.GRPCAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
			DispatchRateLimit: jsonCfg.Server.DispatchRateLimit,
			DispatchBurst:     jsonCfg.Server.DispatchBurst,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			TokenTTL:       time.Duration(jsonCfg.Adapter.TokenTTL),
		},
		Workers: Workers{
			ExchangeRateURL:      jsonCfg.Workers.ExchangeRateURL,
			ExchangeRateSchedule: jsonCfg.Workers.ExchangeRateSchedule,
			StaleCallSchedule:    jsonCfg.Workers.StaleCallSchedule,
			StaleCallAge:         time.Duration(jsonCfg.Workers.StaleCallAge),
		},
		Pricing: Pricing{
			LiveKitSIP:       jsonCfg.Pricing.LiveKitSIP,
			DeepgramSTT:      jsonCfg.Pricing.DeepgramSTT,
			DeepgramTTS:      jsonCfg.Pricing.DeepgramTTS,
			GroqInput:        jsonCfg.Pricing.GroqInput,
			GroqOutput:       jsonCfg.Pricing.GroqOutput,
			AvgTokensPerCall: jsonCfg.Pricing.AvgTokensPerCall,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
