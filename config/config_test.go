package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv creates a temporary directory with a config/ subdirectory and
// changes the working directory to it. The returned cleanup restores the
// original working directory.
func setupTestEnv(t *testing.T) func() {
	t.Helper()

	tempDir := t.TempDir()
	err := os.Mkdir(filepath.Join(tempDir, "config"), 0755)
	require.NoError(t, err)

	originalWD, err := os.Getwd()
	require.NoError(t, err)

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	return func() {
		_ = os.Chdir(originalWD)
	}
}

// createTempConfigFile writes an env file into the config/ directory created
// by setupTestEnv.
func createTempConfigFile(t *testing.T, filename, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join("config", filename), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	setRequiredEnvVars := func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "access_secret")
		t.Setenv("REFRESH_TOKEN_SECRET", "refresh_secret")
	}

	t.Run("loads configuration from dev file", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		createTempConfigFile(t, ".env.dev", `
PORT=3000
ACCESS_TOKEN_SECRET=dev_access_secret
REFRESH_TOKEN_SECRET=dev_refresh_secret
ACCESS_TOKEN_EXPIRY=10
SEED_SAMPLE_DATA=false
LOG_FORMAT=text
`)

		cfg := Load()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "dev_access_secret", cfg.AccessTokenSecret)
		assert.Equal(t, "dev_refresh_secret", cfg.RefreshTokenSecret)
		assert.Equal(t, 10, cfg.AccessExpiryMin)
		assert.False(t, cfg.SeedSampleData)
		assert.Equal(t, "text", cfg.LogFormat)
		// Not in the file, so the default applies.
		assert.Equal(t, DefaultRefreshTokenExpiryMin, cfg.RefreshExpiryMin)
	})

	t.Run("loads configuration from prod file", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		t.Setenv("ENV", "production")

		createTempConfigFile(t, ".env.prod", `
PORT=8000
ACCESS_TOKEN_SECRET=prod_access_secret
REFRESH_TOKEN_SECRET=prod_refresh_secret
`)

		cfg := Load()

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "8000", cfg.Port)
		assert.Equal(t, "prod_access_secret", cfg.AccessTokenSecret)
		assert.Equal(t, "prod_refresh_secret", cfg.RefreshTokenSecret)
		assert.Equal(t, DefaultAccessTokenExpiryMin, cfg.AccessExpiryMin)
	})

	t.Run("uses default values when not set in file or env", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		setRequiredEnvVars(t)

		cfg := Load()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultAccessTokenExpiryMin, cfg.AccessExpiryMin)
		assert.Equal(t, DefaultRefreshTokenExpiryMin, cfg.RefreshExpiryMin)
		assert.Equal(t, DefaultBcryptCost, cfg.BcryptCost)
		assert.Equal(t, DefaultSeedSampleData, cfg.SeedSampleData)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
		assert.Equal(t, DefaultCORSAllowOrigins, cfg.CORSAllowOrigins)
		assert.Equal(t, DefaultShutdownTimeoutSec, cfg.ShutdownTimeoutSec)
	})

	t.Run("environment variables override file configuration", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		createTempConfigFile(t, ".env.dev", `
PORT=3000
ACCESS_TOKEN_SECRET=file_access_secret
REFRESH_TOKEN_SECRET=file_refresh_secret
`)

		t.Setenv("PORT", "9090")
		t.Setenv("REFRESH_TOKEN_SECRET", "env_refresh_secret")
		t.Setenv("ACCESS_TOKEN_EXPIRY", "99")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "env_refresh_secret", cfg.RefreshTokenSecret)
		assert.Equal(t, "file_access_secret", cfg.AccessTokenSecret)
		assert.Equal(t, 99, cfg.AccessExpiryMin)
	})

	t.Run("invalid numbers fall back to defaults", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		setRequiredEnvVars(t)
		t.Setenv("BCRYPT_COST", "lots")
		t.Setenv("SEED_SAMPLE_DATA", "maybe")

		cfg := Load()

		assert.Equal(t, DefaultBcryptCost, cfg.BcryptCost)
		assert.Equal(t, DefaultSeedSampleData, cfg.SeedSampleData)
	})
}

// TestLoad_FatalOnMissingKeys re-runs the test binary in a subprocess so the
// log.Fatalf exit can be observed.
func TestLoad_FatalOnMissingKeys(t *testing.T) {
	testCases := map[string]string{
		"ACCESS_TOKEN_SECRET":  "Missing required config: ACCESS_TOKEN_SECRET",
		"REFRESH_TOKEN_SECRET": "Missing required config: REFRESH_TOKEN_SECRET",
	}

	for missingKey, expectedErr := range testCases {
		t.Run(fmt.Sprintf("missing_%s", missingKey), func(t *testing.T) {
			if os.Getenv("GO_TEST_FATAL") == "1" {
				Load()
				return
			}

			cmd := exec.Command(os.Args[0], "-test.run", t.Name())
			for _, kv := range os.Environ() {
				if !strings.HasPrefix(kv, missingKey+"=") {
					cmd.Env = append(cmd.Env, kv)
				}
			}
			cmd.Env = append(cmd.Env, "GO_TEST_FATAL=1")

			for key := range testCases {
				if key != missingKey {
					cmd.Env = append(cmd.Env, fmt.Sprintf("%s=some_value", key))
				}
			}

			output, err := cmd.CombinedOutput()

			exitErr, ok := err.(*exec.ExitError)
			require.True(t, ok, "Expected command to exit with an error")
			assert.False(t, exitErr.Success(), "Expected command to fail")
			assert.True(t, strings.Contains(string(output), expectedErr), "Expected output to contain '%s', got '%s'", expectedErr, string(output))
		})
	}
}

func TestLoad_FatalOnSharedSecret(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Load()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", t.Name())
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "ACCESS_TOKEN_SECRET=") && !strings.HasPrefix(kv, "REFRESH_TOKEN_SECRET=") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	cmd.Env = append(cmd.Env, "GO_TEST_FATAL=1", "ACCESS_TOKEN_SECRET=same", "REFRESH_TOKEN_SECRET=same")

	output, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "Expected command to exit with an error")
	assert.False(t, exitErr.Success())
	assert.Contains(t, string(output), "ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
}

func TestLoader_getEnv(t *testing.T) {
	l := &loader{file: map[string]string{"FROM_FILE": "file-value"}}

	t.Run("returns value if env var is set", func(t *testing.T) {
		t.Setenv("TEST_GETENV_KEY", "my-test-value")
		assert.Equal(t, "my-test-value", l.getEnv("TEST_GETENV_KEY", "fallback"))
	})

	t.Run("returns file value when env var is not set", func(t *testing.T) {
		assert.Equal(t, "file-value", l.getEnv("FROM_FILE", "fallback"))
	})

	t.Run("returns fallback if env var is set but empty", func(t *testing.T) {
		t.Setenv("TEST_GETENV_EMPTY_KEY", "")
		assert.Equal(t, "my-fallback-value", l.getEnv("TEST_GETENV_EMPTY_KEY", "my-fallback-value"))
	})
}

func TestEnvFile(t *testing.T) {
	assert.Equal(t, filepath.Join("config", ".env.dev"), envFile("development"))
	assert.Equal(t, filepath.Join("config", ".env.prod"), envFile("production"))
	assert.Equal(t, filepath.Join("config", ".env.dev"), envFile("staging"))
}
