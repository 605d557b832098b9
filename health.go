// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cqlgate

import (
	"encoding/json"
	"net/http"
)

const (
	contentType     = "Content-Type"
	contentTypeJSON = "application/health+json"
	svcStatus       = "pass"
	description     = " service"
)

// Build information, set via ldflags at release time.
var (
	// Version of the service.
	Version = "0.1.0"
	// Commit represents the service commit hash.
	Commit = "XXXXXXXXXXXX"
	// BuildTime contains the service build timestamp.
	BuildTime = "XXXXXXXXXXXX"
)

// HealthInfo contains the health check details.
type HealthInfo struct {
	// Status contains the service status.
	Status string `json:"status"`

	// Version contains the current service version.
	Version string `json:"version"`

	// Commit represents the git hash commit.
	Commit string `json:"commit"`

	// Description contains the service description.
	Description string `json:"description"`

	// BuildTime contains the service build time.
	BuildTime string `json:"build_time"`

	// InstanceID contains the ID of the running instance.
	InstanceID string `json:"instance_id"`
}

// Health exposes an HTTP handler for retrieving the service health.
func Health(service, instanceID string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		res := HealthInfo{
			Status:      svcStatus,
			Version:     Version,
			Commit:      Commit,
			Description: service + description,
			BuildTime:   BuildTime,
			InstanceID:  instanceID,
		}

		rw.Header().Set(contentType, contentTypeJSON)
		rw.WriteHeader(http.StatusOK)
		b, err := json.Marshal(res)
		if err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err = rw.Write(b); err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}
