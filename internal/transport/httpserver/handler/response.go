package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"care-app-go/internal/observability"
	"care-app-go/internal/validation"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// validateRequest runs schema validation and writes the per-field error
// envelope on failure. Returns false when the request was rejected.
func (h *Handlers) validateRequest(w http.ResponseWriter, payload interface{}) bool {
	err := h.validate.Struct(payload)
	if err == nil {
		return true
	}

	var validationError *validation.Error
	if errors.As(err, &validationError) {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
			Code:    "validation_failed",
			Message: "validation failed",
			Fields:  validationError.Fields,
		}})
		return false
	}

	h.internalError(w, "request validation failed", err)
	return false
}

// writeFieldError answers the single-field variant of the validation
// envelope, used when a domain guard rejects a value the request schema
// could not.
func writeFieldError(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
		Code:    "validation_failed",
		Message: "validation failed",
		Fields:  map[string]string{field: message},
	}})
}

// internalError logs, reports to sentry when enabled and answers 500.
func (h *Handlers) internalError(w http.ResponseWriter, message string, err error, args ...any) {
	h.log.InternalError(message, err, args...)
	observability.CaptureError(err, map[string]string{"handler": message})
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
