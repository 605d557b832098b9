// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cqlgate/cqlgate/pkg/errors"
)

func (sdk *cqlgateSDK) Health() (HealthInfo, errors.SDKError) {
	url := fmt.Sprintf("%s/health", sdk.gatewayURL)

	body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if sdkerr != nil {
		return HealthInfo{}, sdkerr
	}

	var h HealthInfo
	if err := json.Unmarshal(body, &h); err != nil {
		return HealthInfo{}, errors.NewSDKError(err)
	}

	return h, nil
}
