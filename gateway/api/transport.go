// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package api contains the HTTP transport of the query gateway.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cqlgate/cqlgate"
	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/pkg/apiutil"
	"github.com/cqlgate/cqlgate/pkg/errors"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ContentType represents JSON content type.
const ContentType = "application/json"

// MakeHandler returns a HTTP handler for the gateway API endpoints.
func MakeHandler(svc gateway.Service, logger *slog.Logger, svcName, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, encodeError)),
	}

	mux := chi.NewRouter()
	mux.Use(cors)

	mux.Post("/api/execute-query", kithttp.NewServer(
		executeQueryEndpoint(svc),
		decodeExecuteQuery,
		encodeResponse,
		opts...,
	).ServeHTTP)

	mux.Get("/", root(svcName))
	mux.Get("/health", cqlgate.Health(svcName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// root serves a small service identification document.
func root(svcName string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ContentType)
		res := map[string]string{
			"service": svcName,
			"message": "CQL query gateway API",
		}
		if err := json.NewEncoder(w).Encode(res); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

// cors allows browser frontends hosted on another origin to reach the
// gateway. Credentials never travel in cookies, so a wildcard origin is safe.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func decodeExecuteQuery(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req executeQueryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return req, nil
}

func encodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", ContentType)

	if ar, ok := response.(cqlgate.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	w.Header().Set("Content-Type", ContentType)
	switch {
	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		w.WriteHeader(http.StatusUnsupportedMediaType)

	case errors.Contains(err, apiutil.ErrMissingQuery),
		errors.Contains(err, apiutil.ErrMissingHost),
		errors.Contains(err, apiutil.ErrInvalidPort),
		errors.Contains(err, apiutil.ErrInvalidMode),
		errors.Contains(err, apiutil.ErrInvalidConsistency),
		errors.Contains(err, apiutil.ErrInvalidQueryParams),
		errors.Contains(err, errors.ErrMalformedEntity),
		errors.Contains(err, errors.ErrQueryRejected):
		w.WriteHeader(http.StatusBadRequest)

	case errors.Contains(err, errors.ErrAuthentication):
		w.WriteHeader(http.StatusUnauthorized)

	case errors.Contains(err, errors.ErrUnauthorized):
		w.WriteHeader(http.StatusForbidden)

	case errors.Contains(err, errors.ErrConnection):
		w.WriteHeader(http.StatusBadGateway)

	case errors.Contains(err, errors.ErrTimeout):
		w.WriteHeader(http.StatusGatewayTimeout)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
