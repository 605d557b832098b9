// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides service decorators for logging and metrics.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/cqlgate/cqlgate/gateway"
)

var _ gateway.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service gateway.Service
}

// LoggingMiddleware adds logging facilities to the gateway service.
func LoggingMiddleware(service gateway.Service, logger *slog.Logger) gateway.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) Execute(ctx context.Context, q gateway.Query) (res gateway.Result, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("query",
				slog.String("mode", string(q.Mode)),
				slog.String("keyspace", q.Connection.Keyspace),
				slog.Int("hosts", len(q.Connection.Hosts)),
				slog.Uint64("rows", res.Count),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Execute query failed", args...)
			return
		}
		lm.logger.Info("Execute query completed successfully", args...)
	}(time.Now())

	return lm.service.Execute(ctx, q)
}
