// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/cqlgate/cqlgate/gateway"
	"github.com/go-kit/kit/metrics"
)

var _ gateway.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	service gateway.Service
}

// MetricsMiddleware instruments the gateway service with request count and
// latency metrics.
func MetricsMiddleware(service gateway.Service, counter metrics.Counter, latency metrics.Histogram) gateway.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		service: service,
	}
}

func (mm *metricsMiddleware) Execute(ctx context.Context, q gateway.Query) (gateway.Result, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "execute_query").Add(1)
		mm.latency.With("method", "execute_query").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.Execute(ctx, q)
}
