package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body. Payload shapes are owned by the
// handlers; this only sets the content type and status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the common failure body {success:false, message}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]interface{}{
		"success": false,
		"message": msg,
	})
}
