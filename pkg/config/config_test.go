// Test Type: Unit Test
// Description: Tests for the config package - layered loading and generation

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/isker/robots/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "robots-cli", cfg.UserAgent)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, 0, cfg.Verbosity)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "robots-cli", cfg.UserAgent)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	dir := filepath.Join(configHome, "robots")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.toml"),
		[]byte("user_agent = \"my-crawler\"\n"),
		0644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "my-crawler", cfg.UserAgent)
	assert.Equal(t, "auto", cfg.Color, "unset keys keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	dir := filepath.Join(configHome, "robots")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.toml"),
		[]byte("color = \"always\"\n"),
		0644))

	t.Setenv("ROBOTS_COLOR", "never")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Color)
}

func TestLoad_MalformedFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	dir := filepath.Join(configHome, "robots")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.toml"),
		[]byte("user_agent = [broken\n"),
		0644))

	_, err := config.Load()
	assert.Error(t, err)
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "# robots configuration.")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			continue
		}
		t.Errorf("generated config has an active assignment: %q", line)
	}
}
