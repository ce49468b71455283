/*
Package participant contains the participant registry: who is currently in the
room and when they last signaled presence.

The registry holds at most one record per name. Records are created on
registration, refreshed by status updates, and destroyed either explicitly or
by the presence sweeper once the lease window expires.
*/
package participant

// Participant represents one user currently present in the chat room.
type Participant struct {

	// Name is the unique, case-sensitive identifier within the registry.
	Name string `json:"name"`

	// LastStatus is the timestamp of the last presence signal, in milliseconds
	// since the Unix epoch.
	LastStatus int64 `json:"lastStatus"`
}

// RegisterInput is the payload accepted when a participant joins the room.
type RegisterInput struct {
	Name string `json:"name" validate:"required"`
}
