// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user supplied input before it reaches storage.
//
// Every failure is a [*ValidationError] naming the offending field, and every
// ValidationError matches [ErrInvalidDataProvided] so transports can map the
// whole family to one status code.
package validators

import "context"

// Validator checks obj and returns the first problem found. When fields are
// given only those fields are checked, in the order given.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
