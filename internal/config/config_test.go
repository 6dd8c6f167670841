package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/argonia/hashing"
)

var envKeys = []string{
	"LOG_LEVEL",
	"ARGONIA_MEMORY",
	"ARGONIA_TIME",
	"ARGONIA_PARALLELISM",
	"ARGONIA_KEY_LENGTH",
}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, hashing.DefaultParams(), cfg.Hashing.Params())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ARGONIA_MEMORY", "65536")
	t.Setenv("ARGONIA_TIME", "3")
	t.Setenv("ARGONIA_PARALLELISM", "4")
	t.Setenv("ARGONIA_KEY_LENGTH", "64")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, hashing.Params{Memory: 65536, Time: 3, Threads: 4, KeyLen: 64}, cfg.Hashing.Params())
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("ARGONIA_TIME=5\nLOG_LEVEL=info\n"), 0o600))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint32(5), cfg.Hashing.Time)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, hashing.DefaultMemory, cfg.Hashing.Memory)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	tests := map[string]string{
		"ARGONIA_MEMORY":      "lots",
		"ARGONIA_TIME":        "-1",
		"ARGONIA_PARALLELISM": "256",
		"ARGONIA_KEY_LENGTH":  "4294967296",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			t.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it afterwards (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
