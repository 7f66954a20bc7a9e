// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
)

// settingsFileStorage keeps runtime settings in a dotenv file shared with
// the calling agent. Written values are also exported into the process
// environment.
type settingsFileStorage struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewSettingsFileStorage constructs a [SettingsStorage] over the dotenv file
// at path.
func NewSettingsFileStorage(path string, logger *logger.Logger) SettingsStorage {
	logger.Debug().Str("path", path).Msg("creating settings file storage")
	return &settingsFileStorage{
		path:   path,
		logger: logger,
	}
}

func (s *settingsFileStorage) Read(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *settingsFileStorage) read() (map[string]string, error) {
	values, err := godotenv.Read(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	return values, nil
}

// Write sets the given keys in the dotenv file. Lines of keys that are
// already present are rewritten in place; new keys are appended in sorted
// order. Comments, blank lines and every other line are kept verbatim so
// ${VAR} references the agent relies on are not expanded.
func (s *settingsFileStorage) Write(ctx context.Context, values map[string]string) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	content, err := mergeDotenv(string(raw), values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSettings, err)
	}

	if err = s.replaceFile(content); err != nil {
		log.Err(err).Str("func", "*settingsFileStorage.Write").Str("path", s.path).Msg("error writing settings file")
		return fmt.Errorf("%w: %w", ErrWritingSettings, err)
	}

	for key, value := range values {
		if err = os.Setenv(key, value); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingSettings, err)
		}
	}

	return nil
}

// replaceFile writes content to a temporary sibling and renames it over the
// settings file, keeping the permissions of the file it replaces.
func (s *settingsFileStorage) replaceFile(content string) error {
	mode := fs.FileMode(0o600)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// mergeDotenv returns content with the lines of keys in values replaced and
// the missing keys appended.
func mergeDotenv(content string, values map[string]string) (string, error) {
	pending := maps.Clone(values)

	var lines []string
	if content != "" {
		lines = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	}

	for i, line := range lines {
		key, ok := dotenvKey(line)
		if !ok {
			continue
		}
		value, touched := pending[key]
		if !touched {
			continue
		}
		formatted, err := formatDotenvLine(key, value)
		if err != nil {
			return "", err
		}
		lines[i] = formatted
		delete(pending, key)
	}

	for _, key := range slices.Sorted(maps.Keys(pending)) {
		formatted, err := formatDotenvLine(key, pending[key])
		if err != nil {
			return "", err
		}
		lines = append(lines, formatted)
	}

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// dotenvKey reports the key assigned on a single dotenv line. Comments,
// blank lines and lines that do not parse on their own yield false.
func dotenvKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	parsed, err := godotenv.Unmarshal(line)
	if err != nil || len(parsed) != 1 {
		return "", false
	}
	for key := range parsed {
		return key, true
	}
	return "", false
}

func formatDotenvLine(key, value string) (string, error) {
	return godotenv.Marshal(map[string]string{key: value})
}
