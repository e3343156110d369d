package models

import "github.com/rs/zerolog"

// Credential is a stored user record: a unique username paired with a one-way
// hash of the user's password. A record is created once at registration and
// never mutated afterwards.
type Credential struct {
	// Username is the unique key of the record.
	Username string `json:"username"`

	// PasswordHash is the salted hash produced by the password hasher.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`
}

// Credentials is a transient username/password pair submitted by a client,
// either to register or to authenticate a single request. It is never
// persisted and the password must never be logged.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]. Only the
// username is written; the password never reaches the logs.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username)
}
