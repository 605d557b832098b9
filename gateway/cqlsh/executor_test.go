// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cqlsh_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/gateway/cqlsh"
	"github.com/cqlgate/cqlgate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCommand writes a shell script standing in for the cqlsh binary and
// returns its path.
func fakeCommand(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cqlsh")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s\n", err))

	return path
}

func testQuery(hosts ...string) gateway.Query {
	return gateway.Query{
		Connection: gateway.Connection{
			Hosts:       hosts,
			Port:        gateway.DefPort,
			Consistency: gateway.DefConsistency,
		},
		Statement: "SELECT * FROM system.local",
		Mode:      gateway.ModeCQLSH,
	}
}

func TestExecuteParsesOutput(t *testing.T) {
	script := `echo " id | name"
echo "----+------"
echo "  1 | anne"
echo ""
echo "(1 rows)"`
	exec := cqlsh.New(cqlsh.Config{Command: fakeCommand(t, script), Timeout: 5 * time.Second})

	res, err := exec.Execute(context.Background(), testQuery("127.0.0.1"))
	require.Nil(t, err, fmt.Sprintf("unexpected error %s\n", err))
	require.Len(t, res.Columns, 2, "expected two parsed columns")
	assert.Equal(t, "id", res.Columns[0].Name, "expected first column name")
	assert.Equal(t, "name", res.Columns[1].Name, "expected second column name")
	require.Len(t, res.Rows, 1, "expected one parsed row")
	assert.Equal(t, "anne", res.Rows[0]["name"], "expected parsed cell value")
	assert.Equal(t, uint64(1), res.Count, "expected trailer row count")
	assert.Greater(t, res.Duration, time.Duration(0), "expected a measured duration")
}

func TestExecuteCommandFailure(t *testing.T) {
	script := `echo "Connection error: ('Unable to connect to any servers')" >&2
exit 1`
	exec := cqlsh.New(cqlsh.Config{Command: fakeCommand(t, script), Timeout: 5 * time.Second})

	_, err := exec.Execute(context.Background(), testQuery("127.0.0.1"))
	assert.True(t, errors.Contains(err, errors.ErrConnection), fmt.Sprintf("expected %s got %s\n", errors.ErrConnection, err))
}

func TestExecuteUsesFirstContactPoint(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	script := fmt.Sprintf(`printf '%%s\n' "$@" > %s`, argsFile)
	exec := cqlsh.New(cqlsh.Config{Command: fakeCommand(t, script), Timeout: 5 * time.Second})

	_, err := exec.Execute(context.Background(), testQuery("10.0.0.1", "10.0.0.2"))
	require.Nil(t, err, fmt.Sprintf("unexpected error %s\n", err))

	args, err := os.ReadFile(argsFile)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s\n", err))
	assert.Contains(t, string(args), "10.0.0.1", "expected the first contact point on the command line")
	assert.NotContains(t, string(args), "10.0.0.2", "expected the remaining contact points to be skipped")
}
