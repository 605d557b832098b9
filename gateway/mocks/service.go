// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package mocks contains hand-written gateway mocks used in tests.
package mocks

import (
	"context"

	"github.com/cqlgate/cqlgate/gateway"
)

var _ gateway.Service = (*Service)(nil)

// Service is a configurable gateway service mock.
type Service struct {
	// Result is returned on every successful Execute call.
	Result gateway.Result

	// Err, when set, is returned instead of the result.
	Err error

	// Calls records every executed query.
	Calls []gateway.Query
}

func (svc *Service) Execute(_ context.Context, q gateway.Query) (gateway.Result, error) {
	svc.Calls = append(svc.Calls, q)
	if svc.Err != nil {
		return gateway.Result{}, svc.Err
	}

	return svc.Result, nil
}
