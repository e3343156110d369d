// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/api-activity/internal/app"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidRequestBody is returned when a request body cannot be
	// decoded (malformed JSON, broken form encoding, body too large).
	ErrInvalidRequestBody = errors.New(app.MsgInvalidRequestBody)

	// ErrNotFound is reported for unknown routes and for known routes
	// requested with an unsupported method.
	ErrNotFound = errors.New("not found")
)
