package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jwulff/sdpview/internal/logging"
	"github.com/jwulff/sdpview/internal/mcpserver"
	"github.com/jwulff/sdpview/internal/metrics"
)

func mcpCmd(o *options) *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the groups, explain and overview tools over MCP (stdio)",
		Long: `Serve the groups, explain and overview tools to an MCP client over stdio.

Logs go to stderr or the configured log file; stdout carries the protocol.

Examples:
  sdpview mcp
  sdpview mcp --metrics-addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := logging.WithComponent("mcp")

			if metricsAddr != "" {
				ms := metrics.NewServer(metricsAddr, prometheus.DefaultGatherer)
				if err := ms.Start(); err != nil {
					return err
				}
				log.Info().Str("addr", metricsAddr).Msg("Metrics server listening")
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := ms.Shutdown(shutdownCtx); err != nil {
						log.Warn().Err(err).Msg("Metrics server shutdown")
					}
				}()
			}

			srv := mcpserver.New(o.inspector(), metrics.DefaultMetrics, log, Version)
			return srv.ServeStdio(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics and /healthz on this address")
	return cmd
}
