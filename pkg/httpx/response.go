package httpx

import (
	"encoding/json"
	"net/http"
)

// statusMessages are the fixed bodies for framework-level failures.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Misunderstood",
	http.StatusUnauthorized:        "Unauthorised",
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusInternalServerError: "Server error",
}

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded — use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// StatusMessage returns the client-facing message for status. Statuses
// without a fixed message fall back to http.StatusText.
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// WriteStatus writes the standard {"error": ...} body for status.
func WriteStatus(w http.ResponseWriter, status int) {
	JSONError(w, status, StatusMessage(status))
}

// NotFound is the router-level 404 handler.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteStatus(w, http.StatusNotFound)
}

// MethodNotAllowed is the router-level 405 handler.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteStatus(w, http.StatusMethodNotAllowed)
}
