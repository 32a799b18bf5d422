package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("UTEQ_TEST_VALUE=hola\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("UTEQ_TEST_VALUE") })

	loaded, err := LoadDotEnv(filepath.Join(dir, "missing.env"), envFile)

	require.NoError(t, err)
	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "hola", os.Getenv("UTEQ_TEST_VALUE"))
}

func TestLoadDotEnv_None(t *testing.T) {
	loaded, err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestValidEnv(t *testing.T) {
	assert.True(t, ValidEnv(EnvLocal))
	assert.True(t, ValidEnv(EnvProd))
	assert.False(t, ValidEnv("staging"))
}
