package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"RUN_ADDRESS",
	"PORT",
	"DATABASE_URI",
	"DATABASE_SSL",
	"RESET_DB",
	"LOG_LEVEL",
	"CORS_ALLOWED_ORIGINS",
}

// missingEnvFile clears the host environment for the test and returns a
// .env path that does not exist.
func missingEnvFile(t *testing.T) string {
	t.Helper()

	for _, name := range configEnv {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	return filepath.Join(t.TempDir(), ".env")
}

func TestNewConfig_Defaults(t *testing.T) {
	config, err := newConfig(nil, missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":3000", config.Address)
	assert.Equal(t, "file:champsfrechets.db", config.DatabaseURI)
	assert.Equal(t, "info", config.LogLevel)
	assert.False(t, config.ResetDB)
	assert.False(t, config.DatabaseSSL)
	assert.Equal(t, []string{"*"}, config.CORSAllowedOrigins)
}

func TestNewConfig_CORSAllowedOrigins(t *testing.T) {
	envFile := missingEnvFile(t)

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://champsfrechets.ch,http://localhost:5173")

	config, err := newConfig(nil, envFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://champsfrechets.ch", "http://localhost:5173"}, config.CORSAllowedOrigins)
}

func TestNewConfig_EnvOverridesFlags(t *testing.T) {
	envFile := missingEnvFile(t)

	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URI", "postgres://shop@localhost/shop")
	t.Setenv("RESET_DB", "true")

	config, err := newConfig([]string{"-p", "9000", "-d", "file:other.db", "-s"}, envFile)
	require.NoError(t, err)

	assert.Equal(t, ":8081", config.Address)
	assert.Equal(t, "postgres://shop@localhost/shop", config.DatabaseURI)
	assert.True(t, config.ResetDB)
	assert.True(t, config.DatabaseSSL)
}

func TestNewConfig_RunAddress(t *testing.T) {
	envFile := missingEnvFile(t)

	t.Setenv("RUN_ADDRESS", "127.0.0.1:8080")

	config, err := newConfig(nil, envFile)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", config.Address)
}

func TestNewConfig_DotEnv(t *testing.T) {
	path := filepath.Join(filepath.Dir(missingEnvFile(t)), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nPORT=4000\n"), 0o600))

	config, err := newConfig(nil, path)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, ":4000", config.Address)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "port not numeric", args: []string{"-p", "http"}},
		{name: "port out of range", args: []string{"-p", "70000"}},
		{name: "empty database uri", args: []string{"-d", ""}},
		{name: "unknown log level", args: []string{"-l", "loud"}},
		{name: "unknown flag", args: []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConfig(tt.args, missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}
