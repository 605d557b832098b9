// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/pkg/apiutil"
)

type executeQueryReq struct {
	Connection gateway.Connection `json:"connection"`
	Query      string             `json:"query"`
	Mode       string             `json:"mode,omitempty"`
}

func (req executeQueryReq) validate() error {
	mode, ok := gateway.ParseMode(req.Mode)
	if !ok {
		return apiutil.ErrInvalidMode
	}
	if req.Query == "" {
		return apiutil.ErrMissingQuery
	}
	if len(req.Connection.Hosts) == 0 && mode != gateway.ModeGenerate {
		return apiutil.ErrMissingHost
	}
	if req.Connection.Port < 0 || req.Connection.Port > 65535 {
		return apiutil.ErrInvalidPort
	}
	if !gateway.ValidConsistency(req.Connection.Consistency) {
		return apiutil.ErrInvalidConsistency
	}

	return nil
}
