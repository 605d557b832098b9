// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cqlgate/cqlgate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	err0 = errors.New("0")
	err1 = errors.New("1")
	err2 = errors.New("2")
)

func TestError(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		msg  string
	}{
		{
			desc: "level 0 wrapped error",
			err:  err0,
			msg:  "0",
		},
		{
			desc: "level 1 wrapped error",
			err:  errors.Wrap(err1, err0),
			msg:  "1 : 0",
		},
		{
			desc: "level 2 wrapped error",
			err:  errors.Wrap(err2, errors.Wrap(err1, err0)),
			msg:  "2 : 1 : 0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.msg, tc.err.Error(), fmt.Sprintf("%s: unexpected error message", tc.desc))
		})
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		desc      string
		container error
		contained error
		contains  bool
	}{
		{
			desc:      "nil contains nil",
			container: nil,
			contained: nil,
			contains:  true,
		},
		{
			desc:      "nil does not contain an error",
			container: nil,
			contained: err0,
			contains:  false,
		},
		{
			desc:      "error does not contain nil",
			container: err0,
			contained: nil,
			contains:  false,
		},
		{
			desc:      "error contains itself",
			container: err0,
			contained: err0,
			contains:  true,
		},
		{
			desc:      "wrapper contains wrapped error",
			container: errors.Wrap(err1, err0),
			contained: err0,
			contains:  true,
		},
		{
			desc:      "wrapper contains itself",
			container: errors.Wrap(err1, err0),
			contained: err1,
			contains:  true,
		},
		{
			desc:      "deeply wrapped error is found",
			container: errors.Wrap(err2, errors.Wrap(err1, err0)),
			contained: err0,
			contains:  true,
		},
		{
			desc:      "unrelated error is not found",
			container: errors.Wrap(err1, err0),
			contained: err2,
			contains:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.contains, errors.Contains(tc.container, tc.contained), fmt.Sprintf("%s: unexpected containment", tc.desc))
		})
	}
}

func TestUnwrap(t *testing.T) {
	cases := []struct {
		desc    string
		err     error
		wrapper error
		wrapped error
	}{
		{
			desc:    "unwrap a wrapped error",
			err:     errors.Wrap(err1, err0),
			wrapper: err1,
			wrapped: err0,
		},
		{
			desc:    "unwrap a plain error",
			err:     err0,
			wrapper: nil,
			wrapped: err0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			wrapper, wrapped := errors.Unwrap(tc.err)
			if tc.wrapper == nil {
				assert.Nil(t, wrapper, fmt.Sprintf("%s: expected nil wrapper", tc.desc))
			} else {
				assert.Equal(t, tc.wrapper.Error(), wrapper.Error(), fmt.Sprintf("%s: unexpected wrapper", tc.desc))
			}
			assert.Equal(t, tc.wrapped.Error(), wrapped.Error(), fmt.Sprintf("%s: unexpected wrapped error", tc.desc))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, err0), "wrapping with a nil wrapper yields nil")
	assert.Equal(t, err1, errors.Wrap(err1, nil), "wrapping nil yields the wrapper")
}

func TestMarshalJSON(t *testing.T) {
	wrapped := errors.Wrap(err1, err0)
	we, ok := wrapped.(errors.Error)
	require.True(t, ok, "wrapped error must implement Error")

	data, err := json.Marshal(we)
	require.Nil(t, err, fmt.Sprintf("unexpected marshal error %s\n", err))

	var body map[string]string
	err = json.Unmarshal(data, &body)
	require.Nil(t, err, fmt.Sprintf("unexpected unmarshal error %s\n", err))
	assert.Equal(t, "1", body["message"], "unexpected message field")
	assert.Equal(t, "0", body["error"], "unexpected error field")
}

func TestCheckError(t *testing.T) {
	cases := []struct {
		desc     string
		status   int
		body     string
		expected []int
		sdkerr   bool
		code     int
	}{
		{
			desc:     "expected status",
			status:   http.StatusOK,
			body:     `{}`,
			expected: []int{http.StatusOK},
			sdkerr:   false,
		},
		{
			desc:     "unexpected status with error body",
			status:   http.StatusBadRequest,
			body:     `{"error": "missing query", "message": "validation failed"}`,
			expected: []int{http.StatusOK},
			sdkerr:   true,
			code:     http.StatusBadRequest,
		},
		{
			desc:     "unexpected status without error key",
			status:   http.StatusInternalServerError,
			body:     `{"message": "boom"}`,
			expected: []int{http.StatusOK},
			sdkerr:   true,
			code:     http.StatusInternalServerError,
		},
		{
			desc:     "unexpected status with invalid body",
			status:   http.StatusBadGateway,
			body:     `not json`,
			expected: []int{http.StatusOK},
			sdkerr:   true,
			code:     http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tc.status,
				Body:       http.NoBody,
			}
			if tc.body != "" {
				rec := httptest.NewRecorder()
				rec.WriteHeader(tc.status)
				_, err := rec.WriteString(tc.body)
				require.Nil(t, err, fmt.Sprintf("%s: unexpected write error %s\n", tc.desc, err))
				resp = rec.Result()
			}

			sdkerr := errors.CheckError(resp, tc.expected...)
			if !tc.sdkerr {
				assert.Nil(t, sdkerr, fmt.Sprintf("%s: expected nil error got %s\n", tc.desc, sdkerr))
				return
			}
			require.NotNil(t, sdkerr, fmt.Sprintf("%s: expected an error\n", tc.desc))
			assert.Equal(t, tc.code, sdkerr.StatusCode(), fmt.Sprintf("%s: unexpected status code", tc.desc))
		})
	}
}

func TestSDKErrorMessage(t *testing.T) {
	sdkerr := errors.NewSDKErrorWithStatus(errors.New("missing query"), http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, sdkerr.StatusCode(), "unexpected status code")
	assert.True(t, strings.Contains(sdkerr.Error(), "missing query"), "expected message in error text")
	assert.True(t, strings.Contains(sdkerr.Error(), http.StatusText(http.StatusBadRequest)), "expected status text in error text")
}
