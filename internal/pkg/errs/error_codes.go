/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request payload validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after the JSON document.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Participant and Message Business Logic Errors
const (
	// ErrNameTaken indicates that the participant name is already registered.
	ErrNameTaken = 2101

	// ErrParticipantNotFound indicates that no participant exists for the given name.
	ErrParticipantNotFound = 2102

	// ErrMessageNotFound indicates that no message exists for the given id.
	ErrMessageNotFound = 2201

	// ErrNotMessageOwner indicates that the requester did not send the message.
	ErrNotMessageOwner = 2202

	// ErrInvalidMessageID indicates that the message id is not a valid identifier.
	ErrInvalidMessageID = 2203
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified server internal error.
	ErrUnknown = 5000
)
