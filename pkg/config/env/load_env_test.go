package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CUSTOMERS_TEST_VALUE=from-file\n"), 0o600))
	t.Setenv("ENV_PATH", path)
	t.Setenv("CUSTOMERS_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("CUSTOMERS_TEST_VALUE"))

	require.NoError(t, LoadDotEnv("", "does-not-matter"))
	assert.Equal(t, "from-file", os.Getenv("CUSTOMERS_TEST_VALUE"))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CUSTOMERS_TEST_VALUE=from-file\n"), 0o600))
	t.Setenv("ENV_PATH", path)
	t.Setenv("CUSTOMERS_TEST_VALUE", "from-env")

	require.NoError(t, LoadDotEnv("", ""))
	assert.Equal(t, "from-env", os.Getenv("CUSTOMERS_TEST_VALUE"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), ".env")

	assert.NoError(t, LoadDotEnv("production", missing))
	assert.NoError(t, LoadDotEnv("", missing))
	assert.Error(t, LoadDotEnv("local", missing))
}
