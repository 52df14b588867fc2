package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique user identifier and the primary key of the
	// "users" table. It is immutable after registration.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a bcrypt digest, never plaintext.
	// It is never exposed via JSON and is used only for authentication.
	Password string `json:"-"`

	// FirstName is the user's given name. Non-sensitive, shown in listings.
	FirstName string `json:"first_name"`

	// LastName is the user's family name. Non-sensitive, shown in listings.
	LastName string `json:"last_name"`

	// Phone is the user's contact phone number.
	Phone string `json:"phone"`

	// JoinAt is the timestamp when the account was created.
	// Set once by the database at registration time.
	JoinAt time.Time `json:"join_at"`

	// LastLoginAt is the timestamp of the most recent successful
	// authentication. Nil until the user logs in for the first time.
	LastLoginAt *time.Time `json:"last_login_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicProfile projects the user onto its public representation.
func (u User) PublicProfile() UserProfile {
	return UserProfile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// UserProfile is the public projection of a user embedded in listings and
// resolved message participants. It carries no credential or audit fields.
type UserProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}
