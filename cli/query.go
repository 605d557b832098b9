// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	hosts       []string
	port        int
	username    string
	password    string
	keyspace    string
	consistency string
	mode        string
)

// NewQueryCmd returns the query execution command.
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <statement>",
		Short: "Execute query",
		Long: "Execute a CQL statement through the gateway\n" +
			"usage:\n" +
			"\tcqlgate-cli query \"SELECT * FROM ks.table\" --host 127.0.0.1 -k ks",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			res, err := gwsdk.Execute(sdk.ExecuteRequest{
				Connection: gateway.Connection{
					Hosts:       hosts,
					Port:        port,
					Username:    username,
					Password:    password,
					Keyspace:    keyspace,
					Consistency: consistency,
				},
				Query: args[0],
				Mode:  mode,
			})
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, res)
		},
	}

	cmd.Flags().StringSliceVar(&hosts, "host", []string{"127.0.0.1"}, "Cluster contact points")
	cmd.Flags().IntVar(&port, "port", gateway.DefPort, "Native protocol port")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Cluster username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Cluster password")
	cmd.Flags().StringVarP(&keyspace, "keyspace", "k", "", "Keyspace")
	cmd.Flags().StringVar(&consistency, "consistency", "", "Consistency level")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(gateway.ModeDriver), "Execution mode: driver, cqlsh or generate")

	return cmd
}
