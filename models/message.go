package models

import "time"

// Message is a directed communication unit between two registered users.
//
// The participant references (FromUsername, ToUsername) are immutable after
// creation. ReadAt is nil until the recipient marks the message read; once
// set it never changes and never reverts to nil.
type Message struct {
	// ID is the server-assigned monotonically increasing identifier.
	ID int64 `json:"id"`

	// FromUsername references the sending user. Always derived from the
	// verified token identity, never from a client-supplied field.
	FromUsername string `json:"from_username"`

	// ToUsername references the receiving user.
	ToUsername string `json:"to_username"`

	// Body is the opaque message text.
	Body string `json:"body"`

	// SentAt is set once by the database at creation time.
	SentAt time.Time `json:"sent_at"`

	// ReadAt is nil while the message is unread. Set exactly once by the
	// mark-read operation; the transition is one-way.
	ReadAt *time.Time `json:"read_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// MessageDetail is the full view of a single message with both participants
// resolved into their public profiles.
type MessageDetail struct {
	ID       int64       `json:"id"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
	FromUser UserProfile `json:"from_user"`
	ToUser   UserProfile `json:"to_user"`
}

// IsParticipant reports whether username is the sender or the recipient.
func (m MessageDetail) IsParticipant(username string) bool {
	return m.FromUser.Username == username || m.ToUser.Username == username
}

// MessageWithSender is a listing entry for messages addressed to a user,
// with the sender resolved into a public profile.
type MessageWithSender struct {
	ID       int64       `json:"id"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
	FromUser UserProfile `json:"from_user"`
}

// MessageWithRecipient is a listing entry for messages sent by a user,
// with the recipient resolved into a public profile.
type MessageWithRecipient struct {
	ID     int64       `json:"id"`
	Body   string      `json:"body"`
	SentAt time.Time   `json:"sent_at"`
	ReadAt *time.Time  `json:"read_at"`
	ToUser UserProfile `json:"to_user"`
}

// ReadReceipt is the payload returned by the mark-read operation.
type ReadReceipt struct {
	ID     int64      `json:"id"`
	ReadAt *time.Time `json:"read_at"`
}
