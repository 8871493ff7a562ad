// ABOUTME: Test helpers for config tests
// ABOUTME: Provides utilities for environment variable management

package config

import (
	"os"
	"testing"
)

// withCleanEnv clears the environment and returns a cleanup function that
// restores the original env. Use with t.Cleanup().
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    t.Cleanup(withCleanEnv(t))
//	    // Environment is cleared; Load() sees only defaults
//	}
func withCleanEnv(t *testing.T) func() {
	t.Helper()
	return withCleanEnvAndExtra(t, nil)
}

// withCleanEnvAndExtra clears the environment, sets the given vars, and
// returns a cleanup function that restores the original env. Use with
// t.Cleanup().
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    t.Cleanup(withCleanEnvAndExtra(t, map[string]string{
//	        "DEFAULT_COOLING": "DLC",
//	    }))
//	}
func withCleanEnvAndExtra(t *testing.T, extra map[string]string) func() {
	t.Helper()

	// Save entire environment
	originalEnv := os.Environ()

	// Clear environment for clean slate
	os.Clearenv()

	// Set extra values
	for key, value := range extra {
		os.Setenv(key, value)
	}

	// Return cleanup function that restores original environment
	return func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i := 0; i < len(env); i++ {
				if env[i] == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}
}
