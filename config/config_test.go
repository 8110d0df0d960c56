package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withDotEnv points DotEnvPath at a temp file (or a missing one when content
// is empty) for the duration of the test.
func withDotEnv(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	old := DotEnvPath
	DotEnvPath = path
	t.Cleanup(func() { DotEnvPath = old })
	return dir
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "logger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "level: Warning\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Warning", cfg.Level)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeYAML(t, t.TempDir(), "level: [unterminated\n")
	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoad_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		dotenv   string
		yaml     string
		expected string
	}{
		{
			name:     "Nothing Configured",
			expected: "",
		},
		{
			name:     "YAML Only",
			yaml:     "level: info\n",
			expected: "info",
		},
		{
			name:     "DotEnv Beats YAML",
			yaml:     "level: info\n",
			dotenv:   "LOG_LEVEL=debug\n",
			expected: "debug",
		},
		{
			name:     "Process Env Beats Everything",
			yaml:     "level: info\n",
			dotenv:   "LOG_LEVEL=debug\n",
			env:      map[string]string{EnvLevel: "error"},
			expected: "error",
		},
		{
			name:     "Unknown Name Passed Through",
			env:      map[string]string{EnvLevel: "verbose"},
			expected: "verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLevel, "")
			t.Setenv(EnvFile, "")
			os.Unsetenv(EnvLevel)
			os.Unsetenv(EnvFile)

			dir := withDotEnv(t, tt.dotenv)
			if tt.yaml != "" {
				path := writeYAML(t, dir, tt.yaml)
				if tt.dotenv != "" {
					// the YAML path may itself come from .env
					require.NoError(t, os.WriteFile(DotEnvPath, []byte(tt.dotenv+"LOG_CONFIG="+path+"\n"), 0o600))
				} else {
					t.Setenv(EnvFile, path)
				}
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Level)
		})
	}
}

func TestLoad_DoesNotTouchProcessEnv(t *testing.T) {
	t.Setenv(EnvLevel, "")
	os.Unsetenv(EnvLevel)
	withDotEnv(t, "LOG_LEVEL=info\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Level)

	_, set := os.LookupEnv(EnvLevel)
	assert.False(t, set, ".env values must not leak into the process environment")
}

func TestLoad_BadYAMLPath(t *testing.T) {
	t.Setenv(EnvLevel, "")
	withDotEnv(t, "")
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}
