// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns [ErrVersionIsNotSpecified] when cfg carries no
// version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetVersionInfo reports the configured version together with the linker
// build metadata; unset build fields read "N/A".
func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return models.VersionInfo{
		Version:     s.appVersion,
		BuildDate:   orNA(s.build.BuildDate()),
		BuildCommit: orNA(s.build.BuildCommit()),
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
