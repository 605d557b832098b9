// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package driver executes queries through the native Go driver. A session is
// created per submission and torn down when the result has been read, so no
// connection state survives between requests.
package driver

import (
	"context"
	"time"

	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/internal/clients/cassandra"
)

var _ gateway.Executor = (*executor)(nil)

type executor struct {
	defaults cassandra.Config
}

// New returns a driver-backed executor. Fields missing from a request
// descriptor fall back to the given default cluster configuration.
func New(defaults cassandra.Config) gateway.Executor {
	return executor{defaults: defaults}
}

func (e executor) Execute(ctx context.Context, q gateway.Query) (gateway.Result, error) {
	session, err := cassandra.Connect(e.config(q.Connection))
	if err != nil {
		return gateway.Result{}, classifyConnect(err)
	}
	defer session.Close()

	start := time.Now()
	iter := session.Query(q.Statement).WithContext(ctx).Iter()

	columns := make([]gateway.Column, 0, len(iter.Columns()))
	for _, c := range iter.Columns() {
		columns = append(columns, gateway.Column{
			Name: c.Name,
			Type: c.TypeInfo.Type().String(),
		})
	}

	rows := []map[string]interface{}{}
	row := map[string]interface{}{}
	for iter.MapScan(row) {
		rows = append(rows, row)
		row = map[string]interface{}{}
	}

	if err := iter.Close(); err != nil {
		return gateway.Result{}, classifyQuery(err)
	}

	return gateway.Result{
		Columns:  columns,
		Rows:     rows,
		Count:    uint64(len(rows)),
		Duration: time.Since(start),
	}, nil
}

func (e executor) config(conn gateway.Connection) cassandra.Config {
	cfg := e.defaults
	cfg.Hosts = conn.Hosts
	cfg.Port = conn.Port
	cfg.Consistency = conn.Consistency
	if conn.Username != "" {
		cfg.User = conn.Username
		cfg.Pass = conn.Password
	}
	if conn.Keyspace != "" {
		cfg.Keyspace = conn.Keyspace
	}

	return cfg
}
