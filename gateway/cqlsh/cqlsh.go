// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cqlsh executes queries by shelling out to the cqlsh tool and
// parsing its tabular output. The strategy exists for operators who want the
// exact behavior of the stock tool, prepared statements and driver policies
// excluded.
//
// The tool accepts a single host argument, so only the first contact point of
// the connection descriptor is dialed. Additional hosts are ignored in this
// mode; the native driver mode uses all of them.
package cqlsh

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/pkg/errors"
)

var errConfig = errors.New("failed to load cqlsh configuration")

// Config contains cqlsh invocation parameters.
type Config struct {
	Command string        `env:"COMMAND" envDefault:"cqlsh"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Setup loads the cqlsh configuration from the environment.
func Setup(envPrefix string) (Config, error) {
	config := Config{}
	if err := env.ParseWithOptions(&config, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errors.Wrap(errConfig, err)
	}

	return config, nil
}

var _ gateway.Executor = (*executor)(nil)

type executor struct {
	cfg Config
}

// New returns an executor that runs every query through the cqlsh binary.
func New(cfg Config) gateway.Executor {
	return executor{cfg: cfg}
}

func (e executor) Execute(ctx context.Context, q gateway.Query) (gateway.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	// The consistency level is a cqlsh shell command, not a flag.
	statement := fmt.Sprintf("CONSISTENCY %s; %s", q.Connection.Consistency, q.Statement)

	args := []string{"--no-color", "-e", statement}
	args = append(args, fmt.Sprintf("--request-timeout=%d", int(e.cfg.Timeout.Seconds())))
	if q.Connection.Username != "" {
		args = append(args, "-u", q.Connection.Username, "-p", q.Connection.Password)
	}
	if q.Connection.Keyspace != "" {
		args = append(args, "-k", q.Connection.Keyspace)
	}
	// cqlsh takes exactly one host argument.
	args = append(args, q.Connection.Hosts[0], strconv.Itoa(q.Connection.Port))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.cfg.Command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		return gateway.Result{}, errors.Wrap(errors.ErrTimeout, ctx.Err())
	}
	if err != nil {
		return gateway.Result{}, classify(err, stderr.String())
	}

	res := Parse(stdout.String())
	res.Duration = elapsed

	return res, nil
}

// classify maps a cqlsh failure onto the gateway error taxonomy, keyed on
// the exception names the tool prints to stderr.
func classify(err error, stderr string) error {
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		detail = err.Error()
	}
	cause := errors.New(detail)

	switch {
	case strings.Contains(stderr, "AuthenticationFailed"),
		strings.Contains(stderr, "Bad credentials"),
		strings.Contains(stderr, "password are incorrect"):
		return errors.Wrap(errors.ErrAuthentication, cause)
	case strings.Contains(stderr, "Unauthorized"):
		return errors.Wrap(errors.ErrUnauthorized, cause)
	case strings.Contains(stderr, "SyntaxException"), strings.Contains(stderr, "InvalidRequest"):
		return errors.Wrap(errors.ErrQueryRejected, cause)
	case strings.Contains(stderr, "OperationTimedOut"):
		return errors.Wrap(errors.ErrTimeout, cause)
	case strings.Contains(stderr, "Connection error"), strings.Contains(stderr, "Unable to connect"):
		return errors.Wrap(errors.ErrConnection, cause)
	default:
		return errors.Wrap(errors.ErrExecution, cause)
	}
}
