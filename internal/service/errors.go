package service

import (
	"errors"

	"github.com/MKhiriev/api-activity/internal/app"
	"github.com/MKhiriev/api-activity/internal/validators"
)

var (
	// ErrInvalidDataProvided is matched by every validation failure
	// returned from the services (see [validators.ValidationError]).
	ErrInvalidDataProvided = validators.ErrInvalidDataProvided

	// ErrUsernameTaken is returned by Register when the username already
	// has a stored credential.
	ErrUsernameTaken = errors.New(app.MsgUsernameTaken)

	// ErrAuthenticationFailed is returned for an unknown username and for a
	// wrong password alike. Its message must not reveal which one happened.
	ErrAuthenticationFailed = errors.New(app.MsgInvalidUsernamePassword)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
