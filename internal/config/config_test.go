package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/goviet-ime/internal/engine"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	f, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, DefaultFile(), f)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := File{
		Method:                "vni",
		Enabled:               true,
		SkipWShortcut:         true,
		EscRestoreEnabled:     false,
		FreeToneEnabled:       true,
		ModernTone:            false,
		InstantRestoreEnabled: true,
		ShortcutsEnabled:      true,
	}

	assert.NoError(t, Save(path, want))

	got, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyDrivesEngineSetters(t *testing.T) {
	e := engine.New(engine.NewTelexMethod())
	f := File{
		Method:                "vni",
		Enabled:               true,
		ShortcutsEnabled:      true,
		InstantRestoreEnabled: true,
	}

	f.Apply(e)

	got := e.Config()
	assert.Equal(t, engine.MethodVNI, got.Method)
	assert.True(t, got.ShortcutsEnabled)
	assert.True(t, got.InstantRestoreEnabled)
}
