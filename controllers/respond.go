package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

// writeJSON renders body as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError renders an error body of the form {"detail": ...}. detail is
// either a plain message or a field-to-message map from the validation layer.
func writeError(w http.ResponseWriter, status int, detail interface{}) {
	writeJSON(w, status, map[string]interface{}{"detail": detail})
}

// writeValidationError surfaces a payload Validate() failure as a 400 with
// field-level detail.
func writeValidationError(w http.ResponseWriter, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		writeError(w, http.StatusBadRequest, fields)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
