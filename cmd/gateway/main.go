// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the gateway main function to start the query gateway
// service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/gateway/api"
	"github.com/cqlgate/cqlgate/gateway/cqlsh"
	"github.com/cqlgate/cqlgate/gateway/driver"
	"github.com/cqlgate/cqlgate/gateway/generate"
	"github.com/cqlgate/cqlgate/gateway/middleware"
	"github.com/cqlgate/cqlgate/internal"
	"github.com/cqlgate/cqlgate/internal/clients/cassandra"
	"github.com/cqlgate/cqlgate/internal/server"
	httpserver "github.com/cqlgate/cqlgate/internal/server/http"
	cqlgatelog "github.com/cqlgate/cqlgate/logger"
	"github.com/cqlgate/cqlgate/pkg/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "gateway"
	envPrefixHTTP  = "CQLGATE_HTTP_"
	envPrefixDB    = "CQLGATE_CASSANDRA_"
	envPrefixCQLSH = "CQLGATE_CQLSH_"
	defSvcHTTPPort = "8000"
)

type config struct {
	LogLevel   string `env:"CQLGATE_LOG_LEVEL"   envDefault:"info"`
	InstanceID string `env:"CQLGATE_INSTANCE_ID" envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := cqlgatelog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer cqlgatelog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	dbConfig, err := cassandra.Setup(envPrefixDB)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}

	cqlshConfig, err := cqlsh.Setup(envPrefixCQLSH)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}

	svc := newService(dbConfig, cqlshConfig, logger)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}
	hs := httpserver.New(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, svcName, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
		exitCode = 1
	}
}

func newService(dbConfig cassandra.Config, cqlshConfig cqlsh.Config, logger *slog.Logger) gateway.Service {
	svc := gateway.NewService(map[gateway.Mode]gateway.Executor{
		gateway.ModeDriver:   driver.New(dbConfig),
		gateway.ModeCQLSH:    cqlsh.New(cqlshConfig),
		gateway.ModeGenerate: generate.New(),
	})
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := internal.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)

	return svc
}
