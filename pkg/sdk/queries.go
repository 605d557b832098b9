// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cqlgate/cqlgate/pkg/errors"
)

const executeEndpoint = "api/execute-query"

func (sdk *cqlgateSDK) Execute(req ExecuteRequest) (QueryResult, errors.SDKError) {
	data, err := json.Marshal(req)
	if err != nil {
		return QueryResult{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s", sdk.gatewayURL, executeEndpoint)

	body, sdkerr := sdk.processRequest(http.MethodPost, url, data, http.StatusOK)
	if sdkerr != nil {
		return QueryResult{}, sdkerr
	}

	var res QueryResult
	if err := json.Unmarshal(body, &res); err != nil {
		return QueryResult{}, errors.NewSDKError(err)
	}

	return res, nil
}
