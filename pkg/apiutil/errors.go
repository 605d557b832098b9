// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/cqlgate/cqlgate/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrMissingQuery indicates an empty query string.
	ErrMissingQuery = errors.New("missing query string")

	// ErrMissingHost indicates that no contact point was provided.
	ErrMissingHost = errors.New("missing cluster host")

	// ErrInvalidPort indicates an out of range port number.
	ErrInvalidPort = errors.New("invalid port number")

	// ErrInvalidMode indicates an unknown execution mode.
	ErrInvalidMode = errors.New("invalid execution mode")

	// ErrInvalidConsistency indicates an unknown consistency level.
	ErrInvalidConsistency = errors.New("invalid consistency level")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrUnsupportedContentType indicates an invalid content type.
	ErrUnsupportedContentType = errors.New("invalid content type")
)
