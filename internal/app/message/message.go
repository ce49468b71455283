/*
Package message contains the message log: an append-mostly, owner-deletable
ordered log of chat and status events.

Messages are never mutated once written. Ordering is the store's insertion
order; the human-readable clock field is presentation only.
*/
package message

// Recipient sentinel meaning "everyone in the room".
const BroadcastRecipient = "Todos"

// Message kinds. Clients may post message and private_message; status is
// reserved for system-generated join/leave announcements.
const (
	KindMessage        = "message"
	KindPrivateMessage = "private_message"
	KindStatus         = "status"
)

// Message is one chat or system event in the ordered log.
type Message struct {

	// ID is the opaque, store-assigned unique identifier.
	ID string `json:"id"`

	// From is the sender's participant name or a system sentinel.
	From string `json:"from"`

	// To is the recipient's participant name, or BroadcastRecipient.
	To string `json:"to"`

	// Text is the message body.
	Text string `json:"text"`

	// Type is one of the Kind constants.
	Type string `json:"type"`

	// Time is the human-readable time of day (HH:mm:ss) captured at write
	// time. It is not sortable across days or timezones.
	Time string `json:"time"`
}

// PostInput is the payload accepted when a participant posts a message. From
// is taken from the user header, the rest from the request body.
type PostInput struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
	Type string `json:"type" validate:"required,oneof=message private_message"`
}
