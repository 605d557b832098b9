// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the entry point of the gateway command line
// interface.
package main

import (
	"log"

	"github.com/cqlgate/cqlgate/cli"
	"github.com/cqlgate/cqlgate/pkg/sdk"
	"github.com/spf13/cobra"
)

func main() {
	var gatewayURL string
	var tlsVerification bool

	rootCmd := &cobra.Command{
		Use:   "cqlgate-cli",
		Short: "CQL gateway CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s := sdk.NewSDK(sdk.Config{
				GatewayURL:      gatewayURL,
				TLSVerification: tlsVerification,
			})
			cli.SetSDK(s)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&gatewayURL, "gateway-url", "g", "http://localhost:8000", "Gateway service URL")
	rootCmd.PersistentFlags().BoolVar(&tlsVerification, "tls-verification", false, "Verify the gateway TLS certificate")

	rootCmd.AddCommand(cli.NewQueryCmd())
	rootCmd.AddCommand(cli.NewHealthCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
