// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/pkg/apiutil"
	"github.com/cqlgate/cqlgate/pkg/errors"
	"github.com/go-kit/kit/endpoint"
)

func executeQueryEndpoint(svc gateway.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(executeQueryReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		mode, _ := gateway.ParseMode(req.Mode)
		res, err := svc.Execute(ctx, gateway.Query{
			Connection: req.Connection,
			Statement:  req.Query,
			Mode:       mode,
		})
		if err != nil {
			return nil, err
		}

		ret := executeQueryRes{
			Columns: res.Columns,
			Rows:    res.Rows,
			Count:   res.Count,
			Script:  res.Script,
		}
		if res.Duration > 0 {
			ret.Duration = res.Duration.String()
		}

		return ret, nil
	}
}
