// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/models"
)

func TestAgentFileStorage_MissingFileIsZero(t *testing.T) {
	s := NewAgentFileStorage(filepath.Join(t.TempDir(), "agent.yaml"), logger.Nop())

	cfg, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AgentConfig{}, cfg)
}

func TestAgentFileStorage_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	s := NewAgentFileStorage(path, logger.Nop())
	ctx := context.Background()

	want := models.AgentConfig{
		SystemPrompt:     "You are Maya.\nBook appointments politely.",
		InitialGreeting:  "Hi, this is Maya!",
		FallbackGreeting: "Hello?",
	}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "initial_greeting:")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestAgentFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("system_prompt: [unterminated"), 0o600))

	_, err := NewAgentFileStorage(path, logger.Nop()).Load(context.Background())
	require.ErrorIs(t, err, ErrReadingAgentConfig)
}
