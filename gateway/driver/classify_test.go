// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"fmt"
	"testing"

	"github.com/cqlgate/cqlgate/pkg/errors"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
)

type requestError struct {
	code int
	msg  string
}

func (e requestError) Code() int       { return e.code }
func (e requestError) Message() string { return e.msg }
func (e requestError) Error() string   { return e.msg }

var _ gocql.RequestError = (*requestError)(nil)

func TestClassifyConnect(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		want error
	}{
		{
			desc: "credentials request error",
			err:  requestError{code: gocql.ErrCodeCredentials, msg: "bad credentials"},
			want: errors.ErrAuthentication,
		},
		{
			desc: "unauthorized request error",
			err:  requestError{code: gocql.ErrCodeUnauthorized, msg: "no access"},
			want: errors.ErrUnauthorized,
		},
		{
			desc: "handshake authentication failure",
			err:  fmt.Errorf("gocql: unable to create session: authentication required"),
			want: errors.ErrAuthentication,
		},
		{
			desc: "unreachable cluster",
			err:  fmt.Errorf("gocql: unable to create session: control: unable to connect to initial hosts"),
			want: errors.ErrConnection,
		},
		{
			desc: "nil error",
			err:  nil,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			got := classifyConnect(tc.err)
			if tc.want == nil {
				assert.Nil(t, got, fmt.Sprintf("%s: expected nil got %s\n", tc.desc, got))
				return
			}
			assert.True(t, errors.Contains(got, tc.want), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.want, got))
		})
	}
}

func TestClassifyQuery(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		want error
	}{
		{
			desc: "syntax error",
			err:  requestError{code: gocql.ErrCodeSyntax, msg: "line 1: no viable alternative"},
			want: errors.ErrQueryRejected,
		},
		{
			desc: "invalid query",
			err:  requestError{code: gocql.ErrCodeInvalid, msg: "unconfigured table"},
			want: errors.ErrQueryRejected,
		},
		{
			desc: "already exists",
			err:  requestError{code: gocql.ErrCodeAlreadyExists, msg: "keyspace already exists"},
			want: errors.ErrQueryRejected,
		},
		{
			desc: "unauthorized",
			err:  requestError{code: gocql.ErrCodeUnauthorized, msg: "no SELECT permission"},
			want: errors.ErrUnauthorized,
		},
		{
			desc: "read timeout",
			err:  requestError{code: gocql.ErrCodeReadTimeout, msg: "operation timed out"},
			want: errors.ErrTimeout,
		},
		{
			desc: "write timeout",
			err:  requestError{code: gocql.ErrCodeWriteTimeout, msg: "operation timed out"},
			want: errors.ErrTimeout,
		},
		{
			desc: "unavailable",
			err:  requestError{code: gocql.ErrCodeUnavailable, msg: "cannot achieve consistency"},
			want: errors.ErrConnection,
		},
		{
			desc: "server error",
			err:  requestError{code: gocql.ErrCodeServer, msg: "internal error"},
			want: errors.ErrExecution,
		},
		{
			desc: "driver timeout",
			err:  gocql.ErrTimeoutNoResponse,
			want: errors.ErrTimeout,
		},
		{
			desc: "context deadline",
			err:  context.DeadlineExceeded,
			want: errors.ErrTimeout,
		},
		{
			desc: "no connections",
			err:  gocql.ErrNoConnections,
			want: errors.ErrConnection,
		},
		{
			desc: "plain error",
			err:  fmt.Errorf("something broke"),
			want: errors.ErrExecution,
		},
		{
			desc: "nil error",
			err:  nil,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			got := classifyQuery(tc.err)
			if tc.want == nil {
				assert.Nil(t, got, fmt.Sprintf("%s: expected nil got %s\n", tc.desc, got))
				return
			}
			assert.True(t, errors.Contains(got, tc.want), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.want, got))
		})
	}
}
