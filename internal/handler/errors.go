// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// Startup misconfigurations reported by NewHandlers. Both are fatal.
var (
	ErrNoHTTPAddress = errors.New("http address is not configured")
	ErrNoServices    = errors.New("services are not provided")
)
