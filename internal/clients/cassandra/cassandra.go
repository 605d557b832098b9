// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cassandra

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cqlgate/cqlgate/pkg/errors"
	"github.com/gocql/gocql"
)

var (
	errConfig      = errors.New("failed to load Cassandra configuration")
	errConsistency = errors.New("failed to parse consistency level")
)

// Config contains Cassandra cluster specific parameters. It describes the
// default cluster of the gateway; request descriptors override its fields
// per query.
type Config struct {
	Hosts          []string      `env:"HOSTS"           envDefault:"127.0.0.1" envSeparator:","`
	Port           int           `env:"PORT"            envDefault:"9042"`
	User           string        `env:"USER"            envDefault:""`
	Pass           string        `env:"PASS"            envDefault:""`
	Keyspace       string        `env:"KEYSPACE"        envDefault:""`
	Consistency    string        `env:"CONSISTENCY"     envDefault:"LOCAL_QUORUM"`
	Timeout        time.Duration `env:"TIMEOUT"         envDefault:"30s"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// Setup loads the default cluster configuration from the environment.
func Setup(envPrefix string) (Config, error) {
	config := Config{}
	if err := env.ParseWithOptions(&config, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errors.Wrap(errConfig, err)
	}

	return config, nil
}

// Connect establishes a session with the configured Cassandra cluster.
func Connect(cfg Config) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.Keyspace = cfg.Keyspace
	cluster.Timeout = cfg.Timeout
	cluster.ConnectTimeout = cfg.ConnectTimeout
	if cfg.User != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.User,
			Password: cfg.Pass,
		}
	}

	consistency, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
	if err != nil {
		return nil, errors.Wrap(errConsistency, err)
	}
	cluster.Consistency = consistency

	return cluster.CreateSession()
}
