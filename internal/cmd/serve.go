package cmd

import (
	"context"
	"log/slog"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/humanid/internal/app"
	"github.com/dmitrymomot/humanid/pkg/httpserver"
)

func newServeCmd(r *runner) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until interrupted",
		Long: `Serve the JSON API and health probes. The server stops gracefully on
SIGINT or SIGTERM and flushes unsaved registrations before exiting.`,
		Args: cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, cmd *cobra.Command, a *app.App, _ []string) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts := []httpserver.Option{
				httpserver.WithStartHook(func(addr net.Addr) {
					a.Log.InfoContext(ctx, "listening", slog.String("addr", addr.String()))
				}),
			}
			if cmd.Flags().Changed("addr") {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			return a.Serve(ctx, opts...)
		}),
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (env HTTP_ADDR)")

	return cmd
}
