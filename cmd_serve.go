package main

import (
	"github.com/spf13/cobra"
	"github.com/tsinghua-fib-lab/taxregime-sim/taxengine"
)

var listenAddr string

// serveCmd 启动RPC服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tax engine over connect (JSON) until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := runtimeConfig.All
		addr := all.Server.Listen
		if listenAddr != "" {
			addr = listenAddr
		}
		svc := taxengine.NewServer(runtimeConfig.C.Workers)
		return taxengine.RunServer(cmd.Context(), addr, svc, all.Server.AllowedOrigins)
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listening address (overrides server.listen), e.g. :51105")
}
