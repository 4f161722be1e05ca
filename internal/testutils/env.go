package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// IsIntegrationTestEnvironment returns true if the environment is configured
// for running integration tests against PostgreSQL.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// SkipIfNoDatabase skips the test unless DATABASE_URL is set and returns it.
func SkipIfNoDatabase(t *testing.T) string {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping PostgreSQL integration test")
	}
	return dbURL
}

// SetupEnv sets environment variables for the duration of the test.
// Original values are restored by t.Cleanup.
func SetupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		original, existed := os.LookupEnv(name)
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)

		name := name
		t.Cleanup(func() {
			var err error
			if existed {
				err = os.Setenv(name, original)
			} else {
				err = os.Unsetenv(name)
			}
			if err != nil {
				t.Logf("Warning: Failed to restore env var %s: %v", name, err)
			}
		})
	}
}
