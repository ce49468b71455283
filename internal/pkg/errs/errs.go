/*
Package errs provides custom error types and application-level error code constants.

This file defines the CustomError struct, which implements the standard Go error
interface and carries a business code, a user-friendly message, the HTTP status
to respond with, and (for validation failures) the list of violated fields.
*/
package errs

import (
	"fmt"
	"net/http"

	"salachat/internal/pkg/logx"
)

// CustomError is the error structure used throughout the application.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Message is the user-friendly error description.
	Message string

	// Status is the HTTP status code corresponding to this error.
	Status int

	// Fields lists the request fields that failed validation, when applicable.
	Fields []string
}

// Error implements the standard Go error interface.
func (e CustomError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("Error Code %d (HTTP %d): %s %v", e.Code, e.Status, e.Message, e.Fields)
	}
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError constructs a *CustomError from a predefined error code. The optional
// details are printf-style arguments for message templates that contain
// placeholders. An unknown code degrades to ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]
	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &unknownErr
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusInternalServerError
	}

	if len(details) > 0 {
		customErr.Message = fmt.Sprintf(customErr.Message, details...)
	}

	return &customErr
}

// NewValidationError constructs the invalid-parameters error carrying every
// violated field, so a client can fix all problems in one round trip.
func NewValidationError(fields []string) *CustomError {
	customErr := errorMap[ErrInvalidParams]
	customErr.Fields = fields
	return &customErr
}
