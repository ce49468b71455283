/*
Package resp provides helper functions for sending HTTP JSON responses.

Successful responses carry the payload directly (objects or arrays), matching
the plain REST contract of the API. Error responses carry a small envelope with
the business code, a client-safe message, and the violated fields when the
failure came from payload validation.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"salachat/internal/pkg/errs"
	"salachat/internal/pkg/logx"
)

// ErrorBody is the JSON structure returned to clients on failure.
type ErrorBody struct {
	// Code is the business error code (see the errs package).
	Code int `json:"code"`

	// Message is the client-friendly error description.
	Message string `json:"message"`

	// Fields lists the request fields that failed validation, when applicable.
	Fields []string `json:"fields,omitempty"`
}

// RespondJSON sets the JSON headers and sends the payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "Error encoding JSON response", "http_status", httpStatus)
		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondOK sends the payload with HTTP 200.
func RespondOK(w http.ResponseWriter, r *http.Request, payload any) {
	RespondJSON(w, r, http.StatusOK, payload)
}

// RespondCreated sends the payload with HTTP 201.
func RespondCreated(w http.ResponseWriter, r *http.Request, payload any) {
	RespondJSON(w, r, http.StatusCreated, payload)
}

// RespondError sends the error envelope using the status carried by the error.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	body := ErrorBody{
		Code:    customErr.Code,
		Message: customErr.Message,
		Fields:  customErr.Fields,
	}
	RespondJSON(w, r, customErr.Status, body)
}
