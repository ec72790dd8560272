package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading and saving.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrEmptyFile    = errors.New("file is empty")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
)

// isYAMLPath reports whether the path uses a YAML extension. Everything
// else is treated as JSON.
func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// readFile reads a config file with the usual failure cases wrapped.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	return data, nil
}

// writeFile writes data using the atomic rename pattern, creating parent
// directories as needed.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Load reads a server Config from a JSON or YAML file, applying defaults
// for fields the file leaves unset.
func Load(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	} else {
		if !json.Valid(data) {
			return nil, fmt.Errorf("%w in file: %s", ErrInvalidJSON, path)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Save writes a server Config to a file. The format follows the file
// extension.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	data, err := marshalByExt(path, cfg)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// marshalByExt marshals v as YAML or indented JSON based on the path
// extension.
func marshalByExt(path string, v any) ([]byte, error) {
	if isYAMLPath(path) {
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		return data, nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return append(data, '\n'), nil
}
