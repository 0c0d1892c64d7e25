// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package config

import (
	_ "embed"
	"log/slog"
	"os"
	"path/filepath"

	fkerr "github.com/factkit/factkit/pkg/errors"
)

//go:embed factkit.yaml.default
var DefaultConfigYAML []byte

// DefaultConfigPath returns ~/.config/factkit/factkit.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fkerr.Errorf(fkerr.CodeConfigLoadReadFailure, "resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "factkit", "factkit.yaml"), nil
}

// WriteDefault writes the commented default config to path. An existing
// file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fkerr.New(fkerr.CodeConfigWriteFailure, "config already exists; use --force to overwrite",
			fkerr.FieldPath(path))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fkerr.Wrap(err, fkerr.CodeConfigWriteFailure, "creating config directory", fkerr.FieldPath(dir))
	}

	if err := os.WriteFile(path, DefaultConfigYAML, 0o600); err != nil {
		return fkerr.Wrap(err, fkerr.CodeConfigWriteFailure, "writing config", fkerr.FieldPath(path))
	}

	slog.Info("created default config", "path", path)
	return nil
}
