// SPDX-License-Identifier: Apache-2.0

// Package dhis provides the outbound HTTP transport for the importer
// commands.
//
// The primary type is [Client], a resty-backed wrapper that posts raw
// file payloads and JSON payloads to the DHIS2 web API with basic auth
// and a one-hour request timeout. Every call returns a structured
// [Result] classifying the server response into the import-semantics
// families (imported / conflict / unauthorized / failed), so callers can
// react programmatically; [Reporter] is the thin adapter that turns a
// Result back into the console lines the CLI historically printed.
//
// Error values in errors.go are mapped from HTTP status codes so that
// callers can use [errors.Is] for transport-agnostic handling
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package dhis
