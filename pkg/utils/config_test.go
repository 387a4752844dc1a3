package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutEnvFile(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ticket-service", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Empty(t, config.Auth.APIKeyHash)
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("PORT=9090\nDB_NAME=tickets\nREDIS_DB=3\n"), 0o600))
	t.Setenv("DB_NAME", "tickets_test")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "tickets_test", config.Database.Name)
	assert.Equal(t, 3, config.Redis.DB)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}
