// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"strings"

	"github.com/cqlgate/cqlgate/pkg/errors"
	"github.com/gocql/gocql"
)

// classifyConnect maps a session creation failure onto the gateway error
// taxonomy. The driver reports bad credentials either as a typed request
// error or, when they are rejected during the control connection handshake,
// as a plain error mentioning authentication.
func classifyConnect(err error) error {
	if err == nil {
		return nil
	}
	if reqErr, ok := err.(gocql.RequestError); ok {
		switch reqErr.Code() {
		case gocql.ErrCodeCredentials:
			return errors.Wrap(errors.ErrAuthentication, err)
		case gocql.ErrCodeUnauthorized:
			return errors.Wrap(errors.ErrUnauthorized, err)
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "authentication") || strings.Contains(msg, "credentials") || strings.Contains(msg, "password") {
		return errors.Wrap(errors.ErrAuthentication, err)
	}

	return errors.Wrap(errors.ErrConnection, err)
}

// classifyQuery maps a query execution failure onto the gateway error
// taxonomy using the protocol error codes the driver exposes.
func classifyQuery(err error) error {
	if err == nil {
		return nil
	}

	switch err {
	case gocql.ErrTimeoutNoResponse, gocql.ErrConnectionClosed, context.DeadlineExceeded:
		return errors.Wrap(errors.ErrTimeout, err)
	case gocql.ErrNoConnections:
		return errors.Wrap(errors.ErrConnection, err)
	}

	reqErr, ok := err.(gocql.RequestError)
	if !ok {
		return errors.Wrap(errors.ErrExecution, err)
	}

	switch reqErr.Code() {
	case gocql.ErrCodeCredentials:
		return errors.Wrap(errors.ErrAuthentication, err)
	case gocql.ErrCodeUnauthorized:
		return errors.Wrap(errors.ErrUnauthorized, err)
	case gocql.ErrCodeSyntax, gocql.ErrCodeInvalid, gocql.ErrCodeAlreadyExists, gocql.ErrCodeUnprepared:
		return errors.Wrap(errors.ErrQueryRejected, err)
	case gocql.ErrCodeReadTimeout, gocql.ErrCodeWriteTimeout:
		return errors.Wrap(errors.ErrTimeout, err)
	case gocql.ErrCodeUnavailable, gocql.ErrCodeOverloaded, gocql.ErrCodeBootstrapping:
		return errors.Wrap(errors.ErrConnection, err)
	default:
		return errors.Wrap(errors.ErrExecution, err)
	}
}
