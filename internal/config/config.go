// Package config persists the engine's configuration across daemon
// restarts. It owns none of the engine's in-session logic — it only
// knows how to turn an engine.Config into bytes on disk and back,
// grounded on the YAML config manager in the bmf-san/ggc example.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/username/goviet-ime/internal/engine"
)

// File is the on-disk shape of a persisted configuration. Field names
// are the engine.Config field names in lower-snake case.
type File struct {
	Method                string `yaml:"method"`
	Enabled               bool   `yaml:"enabled"`
	SkipWShortcut         bool   `yaml:"skip_w_shortcut"`
	EscRestoreEnabled     bool   `yaml:"esc_restore_enabled"`
	FreeToneEnabled       bool   `yaml:"free_tone_enabled"`
	ModernTone            bool   `yaml:"modern_tone"`
	InstantRestoreEnabled bool   `yaml:"instant_restore_enabled"`
	ShortcutsEnabled      bool   `yaml:"shortcuts_enabled"`
}

// FromEngineConfig converts a live engine.Config to its persisted form.
func FromEngineConfig(cfg engine.Config) File {
	return File{
		Method:                cfg.Method.String(),
		Enabled:               cfg.Enabled,
		SkipWShortcut:         cfg.SkipWShortcut,
		EscRestoreEnabled:     cfg.EscRestoreEnabled,
		FreeToneEnabled:       cfg.FreeToneEnabled,
		ModernTone:            cfg.ModernTone,
		InstantRestoreEnabled: cfg.InstantRestoreEnabled,
		ShortcutsEnabled:      cfg.ShortcutsEnabled,
	}
}

// Apply pushes the persisted settings onto a live engine via its
// setters, so loading a config at startup goes through the same path
// a host flipping settings at runtime would use.
func (f File) Apply(e *engine.Engine) {
	switch f.Method {
	case "vni":
		e.SetMethod(engine.MethodVNI)
	case "passthrough":
		e.SetMethod(engine.MethodPassthrough)
	default:
		e.SetMethod(engine.MethodTelex)
	}
	e.SetEnabled(f.Enabled)
	e.SetSkipWShortcut(f.SkipWShortcut)
	e.SetEscRestore(f.EscRestoreEnabled)
	e.SetFreeTone(f.FreeToneEnabled)
	e.SetModernTone(f.ModernTone)
	e.SetEnglishAutoRestore(f.InstantRestoreEnabled)
	e.SetShortcutsEnabled(f.ShortcutsEnabled)
}

// DefaultFile mirrors engine.DefaultConfig() for hosts that have not
// yet written a config file.
func DefaultFile() File {
	return FromEngineConfig(engine.DefaultConfig())
}

// Path returns the config file's location: $XDG_CONFIG_HOME/govietd/config.yaml,
// falling back to ~/.config/govietd/config.yaml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "govietd", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "govietd", "config.yaml"), nil
}

// Load reads the config file at path, returning DefaultFile if it does
// not exist yet.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultFile(), nil
	}
	if err != nil {
		return File{}, fmt.Errorf("read config file: %w", err)
	}
	f := DefaultFile()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config file: %w", err)
	}
	return f, nil
}

// Save writes f to path, creating parent directories as needed and
// replacing any existing file atomically via a temp-file rename.
func Save(path string, f File) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".govietd-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp config file: %w", err)
	}
	_ = os.Chmod(tmpName, 0o600)
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}
