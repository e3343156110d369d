// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// api-activity server handlers, services and the demo client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgHelloWorld is the greeting returned by the root endpoint.
	MsgHelloWorld = "Hello World!"

	// MsgUserRegistered is returned after a new username was stored.
	MsgUserRegistered = "user registered"

	// MsgAccessGranted is returned by the protected endpoint once the
	// authentication gate let the request through.
	MsgAccessGranted = "access granted"

	// MsgInvalidUsernamePassword is returned for an unknown username and for
	// a wrong password alike.
	MsgInvalidUsernamePassword = "invalid username or password"

	// MsgUsernameTaken is returned when registration hits an existing
	// username.
	MsgUsernameTaken = "username is already taken"

	// MsgInvalidRequestBody is returned when a request body cannot be decoded.
	MsgInvalidRequestBody = "invalid request body"
)

// ShapeSquare names the shape in square area responses.
const ShapeSquare = "Square"
