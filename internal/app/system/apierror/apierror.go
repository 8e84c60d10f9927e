// Package apierror writes the JSON envelopes shared by every handler.
//
// Expected failures (validation, duplicates) carry precise messages; store
// and unexpected failures carry a generic message with the detail left to
// the log, so internal state never leaks to the caller.
package apierror

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/hirehub/internal/app/system/inputval"
)

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Validation writes a 422 listing every offending field.
func Validation(w http.ResponseWriter, result *inputval.Result) {
	JSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": result.Errors,
	})
}

// Conflict writes the 409 for a duplicate submission. The message never
// names which email collided.
func Conflict(w http.ResponseWriter) {
	Error(w, http.StatusConflict, "duplicate submission")
}

// Unavailable writes the 503 used when the store is missing or unreachable.
func Unavailable(w http.ResponseWriter) {
	Error(w, http.StatusServiceUnavailable, "storage unavailable")
}
