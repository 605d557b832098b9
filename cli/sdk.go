// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the gateway command line interface.
package cli

import "github.com/cqlgate/cqlgate/pkg/sdk"

var gwsdk sdk.SDK

// SetSDK sets the SDK instance used by all commands.
func SetSDK(s sdk.SDK) {
	gwsdk = s
}
