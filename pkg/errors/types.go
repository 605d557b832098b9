// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

// Failure classes surfaced by query execution. The API layer maps each of
// them to a distinct HTTP status code.
var (
	// ErrConnection indicates that the addressed cluster could not be reached.
	ErrConnection = New("failed to connect to the cluster")

	// ErrAuthentication indicates that the cluster rejected the supplied credentials.
	ErrAuthentication = New("authentication with the cluster failed")

	// ErrUnauthorized indicates that the authenticated user may not perform the query.
	ErrUnauthorized = New("not authorized to perform the query")

	// ErrQueryRejected indicates that the cluster rejected the query as malformed or invalid.
	ErrQueryRejected = New("query rejected by the cluster")

	// ErrTimeout indicates that the query did not complete in time.
	ErrTimeout = New("query timed out")

	// ErrExecution indicates a query failure with no more specific class.
	ErrExecution = New("query execution failed")

	// ErrMalformedEntity indicates a malformed request body.
	ErrMalformedEntity = New("malformed request body")
)
