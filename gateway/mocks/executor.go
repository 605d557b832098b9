// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/cqlgate/cqlgate/gateway"
)

var _ gateway.Executor = (*Executor)(nil)

// Executor is a configurable execution strategy mock.
type Executor struct {
	Result gateway.Result
	Err    error
	Calls  []gateway.Query
}

func (e *Executor) Execute(_ context.Context, q gateway.Query) (gateway.Result, error) {
	e.Calls = append(e.Calls, q)
	if e.Err != nil {
		return gateway.Result{}, e.Err
	}

	return e.Result, nil
}
