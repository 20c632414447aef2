package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body shared by every endpoint: the HTTP status
// code repeated under "error".
type ErrorResponse struct {
	Error int `json:"error"`
}

// RespondError writes {"error": status} with the given status.
func RespondError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: status})
}

// RespondBadRequest writes a 400 error response.
func RespondBadRequest(w http.ResponseWriter) {
	RespondError(w, http.StatusBadRequest)
}

// RespondNotFound writes a 404 error response.
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound)
}

// RespondMethodNotAllowed writes a 405 error response advertising the allowed methods.
func RespondMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	RespondError(w, http.StatusMethodNotAllowed)
}

// RespondInternalError writes a 500 error response.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError)
}

// RespondServiceUnavailable writes a 503 error response.
func RespondServiceUnavailable(w http.ResponseWriter) {
	RespondError(w, http.StatusServiceUnavailable)
}
