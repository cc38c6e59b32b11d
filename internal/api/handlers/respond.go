// Package handlers holds the response helpers shared by every endpoint
// handler package. All payloads travel in the {success, data} envelope;
// validation failures use the {error, details} shape with one entry per
// failing field.
package handlers

import (
	"encoding/json"
	"net/http"
)

// FieldError is a single per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorBody struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON writes payload as JSON with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondSuccess wraps data in a success envelope.
func RespondSuccess(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, envelope{Success: true, Data: data})
}

// RespondFailure wraps data in a failure envelope. Used for expected,
// recoverable outcomes such as booking conflicts.
func RespondFailure(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, envelope{Success: false, Data: data})
}

// RespondValidationError reports per-field validation failures as 400.
func RespondValidationError(w http.ResponseWriter, details []FieldError) {
	RespondJSON(w, http.StatusBadRequest, errorBody{Error: "Validation failed", Details: details})
}

// RespondBadRequest reports a malformed request without field detail.
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// RespondInternalError reports an unexpected failure without exposing
// internal detail.
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}
