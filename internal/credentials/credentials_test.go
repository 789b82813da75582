// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		configured string
		fallback   string
		want       string
	}{
		{"environment wins", "from-env", "from-config", "placeholder", "from-env"},
		{"config when no env", "", "from-config", "placeholder", "from-config"},
		{"placeholder when nothing set", "", "", "placeholder", "placeholder"},
		{"empty fallback stays empty", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const key = "ALLTHEADS_TEST_CREDENTIAL"
			if tt.envValue != "" {
				t.Setenv(key, tt.envValue)
			} else {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}

			got := Resolve(key, tt.configured, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}

// chdir switches the working directory to dir for the duration of the test,
// restoring the original directory during cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDotenvMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, LoadDotenv())
}

func TestLoadDotenvReadsFile(t *testing.T) {
	const key = "ALLTHEADS_DOTENV_TEST_KEY"
	t.Cleanup(func() { os.Unsetenv(key) })
	os.Unsetenv(key)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=from-dotenv\n"), 0o644))
	chdir(t, dir)

	require.NoError(t, LoadDotenv())
	assert.Equal(t, "from-dotenv", os.Getenv(key))
}

func TestLoadDotenvDoesNotOverrideEnvironment(t *testing.T) {
	const key = "ALLTHEADS_DOTENV_OVERRIDE_TEST"
	t.Setenv(key, "from-environment")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=from-dotenv\n"), 0o644))
	chdir(t, dir)

	require.NoError(t, LoadDotenv())
	assert.Equal(t, "from-environment", os.Getenv(key))
}
