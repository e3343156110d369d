// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the api-activity HTTP API.
//
// [ServerAdapter] hides the transport from the command line client. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/api-activity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the api-activity server.
type ServerAdapter interface {
	// Hello calls GET /.
	Hello(ctx context.Context) (models.Greeting, error)

	// Square calls GET /square/{num}. Negative numbers are not routable and
	// yield [ErrNotFound].
	Square(ctx context.Context, num int64) (models.SquareArea, error)

	// Echo calls GET /echo, sending only the non-nil arguments.
	Echo(ctx context.Context, arg1, arg2 *string) (models.EchoArgs, error)

	// Register calls PUT /register with a JSON body.
	Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error)

	// Sensitive calls GET /sensitive with credentials in the request headers.
	Sensitive(ctx context.Context, credentials models.Credentials) (models.SensitiveResponse, error)

	// Version calls GET /version.
	Version(ctx context.Context) (string, error)
}
