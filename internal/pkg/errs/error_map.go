/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError template corresponding to every application
// error code. The key is the error code (int), and the value carries the user
// message and the HTTP status to respond with.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusUnprocessableEntity},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Request body is not valid JSON.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Participant and Message Business Logic Errors
	ErrNameTaken:           {Code: ErrNameTaken, Message: "This name is already in use.", Status: http.StatusConflict},
	ErrParticipantNotFound: {Code: ErrParticipantNotFound, Message: "Participant not found.", Status: http.StatusNotFound},
	ErrMessageNotFound:     {Code: ErrMessageNotFound, Message: "Message not found.", Status: http.StatusNotFound},
	ErrNotMessageOwner:     {Code: ErrNotMessageOwner, Message: "You can only delete your own messages.", Status: http.StatusUnauthorized},
	ErrInvalidMessageID:    {Code: ErrInvalidMessageID, Message: "Invalid message id.", Status: http.StatusBadRequest},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
