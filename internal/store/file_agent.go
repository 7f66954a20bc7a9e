// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/models"
)

// agentFileStorage keeps the agent persona in a YAML file read by the
// calling agent on start.
type agentFileStorage struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewAgentFileStorage constructs an [AgentStorage] over the YAML file at path.
func NewAgentFileStorage(path string, logger *logger.Logger) AgentStorage {
	logger.Debug().Str("path", path).Msg("creating agent file storage")
	return &agentFileStorage{
		path:   path,
		logger: logger,
	}
}

// Load returns the stored persona. A missing file yields a zero persona.
func (s *agentFileStorage) Load(ctx context.Context) (models.AgentConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.AgentConfig{}, nil
	}
	if err != nil {
		return models.AgentConfig{}, fmt.Errorf("%w: %w", ErrReadingAgentConfig, err)
	}

	var cfg models.AgentConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return models.AgentConfig{}, fmt.Errorf("%w: %w", ErrReadingAgentConfig, err)
	}

	return cfg, nil
}

// Save replaces the stored persona. The file is written to a temporary
// sibling and renamed so the agent never reads a partial file.
func (s *agentFileStorage) Save(ctx context.Context, cfg models.AgentConfig) error {
	log := logger.FromContext(ctx)

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingAgentConfig, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingAgentConfig, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingAgentConfig, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingAgentConfig, err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		log.Err(err).Str("func", "*agentFileStorage.Save").Str("path", s.path).Msg("error replacing agent file")
		return fmt.Errorf("%w: %w", ErrWritingAgentConfig, err)
	}

	return nil
}
