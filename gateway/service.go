// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/cqlgate/cqlgate/pkg/apiutil"
	"github.com/cqlgate/cqlgate/pkg/errors"
)

var errUnknownMode = errors.New("no executor registered for mode")

type service struct {
	executors map[Mode]Executor
}

// NewService instantiates the query gateway with the given execution
// strategies.
func NewService(executors map[Mode]Executor) Service {
	return &service{
		executors: executors,
	}
}

func (svc *service) Execute(ctx context.Context, q Query) (Result, error) {
	mode, ok := ParseMode(string(q.Mode))
	if !ok {
		return Result{}, apiutil.ErrInvalidMode
	}
	q.Mode = mode

	if err := validate(q); err != nil {
		return Result{}, err
	}

	exec, ok := svc.executors[q.Mode]
	if !ok {
		return Result{}, errors.Wrap(errors.ErrExecution, errUnknownMode)
	}

	q.Connection = q.Connection.WithDefaults()

	return exec.Execute(ctx, q)
}

func validate(q Query) error {
	if q.Statement == "" {
		return apiutil.ErrMissingQuery
	}
	// Generated scripts never touch a cluster, so no contact point is needed.
	if len(q.Connection.Hosts) == 0 && q.Mode != ModeGenerate {
		return apiutil.ErrMissingHost
	}
	if q.Connection.Port < 0 || q.Connection.Port > 65535 {
		return apiutil.ErrInvalidPort
	}
	if !ValidConsistency(q.Connection.Consistency) {
		return apiutil.ErrInvalidConsistency
	}

	return nil
}
