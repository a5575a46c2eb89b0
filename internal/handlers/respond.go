package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Gazi-Farhana/summer-camp-server/internal/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
	})
}

// assertSelf enforces the self-match rule on an asserted email. An
// absent asserted email answers with an empty list instead of an error;
// a mismatch against the authenticated email answers 403. Returns true
// only when the handler should continue.
func assertSelf(w http.ResponseWriter, r *http.Request, asserted string) bool {
	if asserted == "" {
		writeJSON(w, http.StatusOK, []interface{}{})
		return false
	}
	if asserted != middleware.EmailFrom(r.Context()) {
		writeError(w, http.StatusForbidden, "access denied")
		return false
	}
	return true
}
