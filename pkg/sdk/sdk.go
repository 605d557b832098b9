// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package sdk provides a Go client for the query gateway HTTP API.
package sdk

import (
	"bytes"
	"crypto/tls"
	"net/http"

	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/pkg/errors"
)

// CTJSON represents JSON content type.
const CTJSON = "application/json"

// ExecuteRequest is a single query submission.
type ExecuteRequest struct {
	Connection gateway.Connection `json:"connection"`
	Query      string             `json:"query"`
	Mode       string             `json:"mode,omitempty"`
}

// QueryResult is the gateway answer to a submission.
type QueryResult struct {
	Columns  []gateway.Column         `json:"columns,omitempty"`
	Rows     []map[string]interface{} `json:"rows,omitempty"`
	Count    uint64                   `json:"count"`
	Duration string                   `json:"duration,omitempty"`
	Script   string                   `json:"script,omitempty"`
}

// HealthInfo contains the gateway health document.
type HealthInfo struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	Description string `json:"description"`
	BuildTime   string `json:"build_time"`
	InstanceID  string `json:"instance_id"`
}

// SDK contains the gateway API.
type SDK interface {
	// Execute submits a query for execution and returns its result.
	Execute(req ExecuteRequest) (QueryResult, errors.SDKError)

	// Health returns the gateway health document.
	Health() (HealthInfo, errors.SDKError)
}

// Config contains the SDK configuration.
type Config struct {
	GatewayURL      string
	MaxIdleConns    int
	TLSVerification bool
}

var _ SDK = (*cqlgateSDK)(nil)

type cqlgateSDK struct {
	gatewayURL string
	client     *http.Client
}

// NewSDK returns a new gateway SDK instance.
func NewSDK(conf Config) SDK {
	return &cqlgateSDK{
		gatewayURL: conf.GatewayURL,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns: conf.MaxIdleConns,
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
	}
}

// processRequest sends the request and verifies the response status against
// the expected codes, returning the response body.
func (sdk *cqlgateSDK) processRequest(method, reqURL string, data []byte, expectedRespCodes ...int) ([]byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return []byte{}, errors.NewSDKError(err)
	}
	req.Header.Set("Content-Type", CTJSON)

	resp, err := sdk.client.Do(req)
	if err != nil {
		return []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	if sdkerr := errors.CheckError(resp, expectedRespCodes...); sdkerr != nil {
		return []byte{}, sdkerr
	}

	body := new(bytes.Buffer)
	if _, err := body.ReadFrom(resp.Body); err != nil {
		return []byte{}, errors.NewSDKError(err)
	}

	return body.Bytes(), nil
}
