package service

import "errors"

var (
	// ErrInvalidDataProvided indicates a request lacking required fields
	// (empty username, password, recipient or body).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single caller-facing authentication
	// failure. Unknown username and wrong password both collapse into it so
	// the boundary cannot be used to probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username/password")

	// ErrTokenCreationFailed indicates the JWT could not be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised verification failure for
	// any bad token: wrong signature, wrong issuer, malformed payload, or
	// expiry in the past.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden indicates the verified identity is not allowed to act on
	// the target resource (not a participant, or not the recipient).
	ErrForbidden = errors.New("not authorized for this resource")
)
