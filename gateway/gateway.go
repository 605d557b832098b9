// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package gateway contains the domain concept definitions of the CQL query
// gateway: the connection descriptor, the query submission and its tabular
// result, together with the execution strategy abstraction.
package gateway

import (
	"context"
	"strings"
	"time"
)

// DefPort is the native protocol port used when the descriptor omits one.
const DefPort = 9042

// DefConsistency is applied when the descriptor omits a consistency level.
const DefConsistency = "LOCAL_QUORUM"

// Mode selects the execution strategy for a submitted query.
type Mode string

const (
	// ModeDriver executes the query through the native Go driver.
	ModeDriver Mode = "driver"

	// ModeCQLSH executes the query by shelling out to the cqlsh tool.
	ModeCQLSH Mode = "cqlsh"

	// ModeGenerate translates a natural-language request into a CQL script
	// without executing anything.
	ModeGenerate Mode = "generate"
)

// ParseMode parses a textual execution mode. An empty value defaults to
// the driver strategy.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return ModeDriver, true
	case ModeDriver:
		return ModeDriver, true
	case ModeCQLSH:
		return ModeCQLSH, true
	case ModeGenerate:
		return ModeGenerate, true
	default:
		return "", false
	}
}

var consistencies = map[string]bool{
	"ONE":          true,
	"LOCAL_ONE":    true,
	"QUORUM":       true,
	"LOCAL_QUORUM": true,
	"ALL":          true,
}

// ValidConsistency reports whether the given level is one the gateway
// accepts. An empty level is valid and resolves to DefConsistency.
func ValidConsistency(level string) bool {
	if level == "" {
		return true
	}
	return consistencies[strings.ToUpper(level)]
}

// Connection addresses a single cluster for the duration of one query.
type Connection struct {
	Hosts       []string `json:"hosts"`
	Port        int      `json:"port,omitempty"`
	Username    string   `json:"username,omitempty"`
	Password    string   `json:"password,omitempty"`
	Keyspace    string   `json:"keyspace,omitempty"`
	Consistency string   `json:"consistency,omitempty"`
}

// WithDefaults returns a copy of the connection with the default port and
// consistency level filled in.
func (c Connection) WithDefaults() Connection {
	if c.Port == 0 {
		c.Port = DefPort
	}
	if c.Consistency == "" {
		c.Consistency = DefConsistency
	}
	c.Consistency = strings.ToUpper(c.Consistency)

	return c
}

// Query is a single submission: one statement bound to one connection
// descriptor and one execution strategy.
type Query struct {
	Connection Connection
	Statement  string
	Mode       Mode
}

// Column describes a single result column.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Result holds the outcome of a query: an ordered tabular result set for
// executed queries, or a generated CQL script for the generate mode.
type Result struct {
	Columns  []Column                 `json:"columns,omitempty"`
	Rows     []map[string]interface{} `json:"rows,omitempty"`
	Count    uint64                   `json:"count"`
	Duration time.Duration            `json:"-"`
	Script   string                   `json:"script,omitempty"`
}

// Executor runs a single query against the cluster the query addresses.
// Implementations must not keep any state between calls: every execution is
// an independent request/response exchange.
type Executor interface {
	Execute(ctx context.Context, q Query) (Result, error)
}

// Service specifies the query gateway API.
type Service interface {
	// Execute validates the submission, applies connection defaults and runs
	// the query through the strategy its mode selects.
	Execute(ctx context.Context, q Query) (Result, error)
}
