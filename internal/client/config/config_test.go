package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/netops/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, client.DefaultBaseURL, c.ServerBaseURL)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, client.DefaultBaseURL, cfg.ServerBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{"-a", "http://127.0.0.1:9090/", "--log-level=debug"})
	require.NoError(t, err)
	assert.Equal(t, &Config{ServerBaseURL: "http://127.0.0.1:9090/", LogLevel: "debug"}, cfg)
}

func TestLoad_SourcesAndPrecedence(t *testing.T) {
	jsonPath := writeTemp(t, "c.json", `{"server_base_url":"http://json:1/","log_level":"info"}`)
	yamlPath := writeTemp(t, "c.yaml", "server_base_url: http://yaml:2/\n")

	t.Run("json file", func(t *testing.T) {
		cfg, err := Load([]string{"-c", jsonPath})
		require.NoError(t, err)
		assert.Equal(t, "http://json:1/", cfg.ServerBaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("yaml file keeps unset defaults", func(t *testing.T) {
		cfg, err := Load([]string{"--config", yamlPath})
		require.NoError(t, err)
		assert.Equal(t, "http://yaml:2/", cfg.ServerBaseURL)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("flags override file", func(t *testing.T) {
		cfg, err := Load([]string{"-c", jsonPath, "-a", "http://flag:3/"})
		require.NoError(t, err)
		assert.Equal(t, "http://flag:3/", cfg.ServerBaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}

func TestLoad_Errors(t *testing.T) {
	bad := writeTemp(t, "bad.json", `{ this is not valid json`)

	_, err := Load([]string{"-c", bad})
	require.Error(t, err)

	_, err = Load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)

	_, err = Load([]string{"-l", "loud"})
	require.Error(t, err)
}

func TestLoad_Help(t *testing.T) {
	_, err := Load([]string{"--help"})
	require.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, Usage(), "--address")
}
