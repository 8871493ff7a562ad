// ABOUTME: JSON error response helper for middleware
// ABOUTME: Ensures middleware error responses match the API's JSON format

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// writeRateLimited writes a 429 with the Retry-After header and a body that
// repeats the retry delay for clients that do not read headers.
func writeRateLimited(w http.ResponseWriter, retrySeconds int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", fmt.Sprintf("%d", retrySeconds))
	w.WriteHeader(http.StatusTooManyRequests)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":       "Rate limit exceeded",
		"retry_after": retrySeconds,
	})
}
