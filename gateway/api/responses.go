// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/cqlgate/cqlgate"
	"github.com/cqlgate/cqlgate/gateway"
)

var _ cqlgate.Response = (*executeQueryRes)(nil)

type executeQueryRes struct {
	Columns  []gateway.Column         `json:"columns,omitempty"`
	Rows     []map[string]interface{} `json:"rows,omitempty"`
	Count    uint64                   `json:"count"`
	Duration string                   `json:"duration,omitempty"`
	Script   string                   `json:"script,omitempty"`
}

func (res executeQueryRes) Code() int {
	return http.StatusOK
}

func (res executeQueryRes) Headers() map[string]string {
	return map[string]string{}
}

func (res executeQueryRes) Empty() bool {
	return false
}
