// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the api-activity
// server.
//
// Arguments are parsed with kong into one command per endpoint. Each command
// calls the server through an [adapter.ServerAdapter] and prints the decoded
// response to stdout. The register-race command fires concurrent
// registrations of one username and reports how many of them won.
package client
