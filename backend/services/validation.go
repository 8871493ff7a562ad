// ABOUTME: Input validation functions for API parameters
// ABOUTME: Prevents URL and log injection via entity ID and name validation

package services

import (
	"fmt"
	"regexp"
	"strings"
)

// entityIDPattern matches campus/zone/hall identifiers: UUIDs and short slugs
var entityIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// maxNameLength caps user-supplied display names
const maxNameLength = 128

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1 // Remove control characters
		}
		return r
	}, s)
}

// ValidateEntityID validates that an entity identifier has a safe format.
// This prevents path traversal when IDs appear in URLs or file names.
func ValidateEntityID(id string) error {
	if id == "" {
		return fmt.Errorf("entity id cannot be empty")
	}
	if !entityIDPattern.MatchString(id) {
		return fmt.Errorf("invalid entity id format: %s", sanitizeForLog(id))
	}
	return nil
}

// ValidateDisplayName validates a user-supplied campus or scenario name.
func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name exceeds %d characters", maxNameLength)
	}
	if sanitizeForLog(name) != name {
		return fmt.Errorf("name contains control characters")
	}
	return nil
}
