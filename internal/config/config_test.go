package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	// run from a directory without a config.yaml
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Storefront.Addr)
	assert.Equal(t, "file", cfg.Storefront.Backend)
	assert.Equal(t, ":3001", cfg.RecordService.Addr)
	assert.False(t, cfg.Publish.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Publish.Timeout)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TECHSTORE_RECORD_SERVICE_ADDR", ":4001")
	t.Setenv("TECHSTORE_PUBLISH_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":4001", cfg.RecordService.Addr)
	assert.True(t, cfg.Publish.Enabled)
}

func TestLoad_UnknownBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TECHSTORE_STOREFRONT_BACKEND", "mongo")

	_, err := Load()
	assert.Error(t, err)
}
