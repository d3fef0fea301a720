package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/models"
)

func newServeCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP control API and the periodic merge job",
		Long: `Run the HTTP control API on --address together with a background job that
merges with the remote store every --sync-interval. Stops on SIGINT or SIGTERM.`,
		Args:    cobra.NoArgs,
		GroupID: "runtime",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, buildInfo, func(ctx context.Context, app *client.App) error {
				return app.Serve(ctx)
			})
		},
	}
}

func newVersionCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print build information",
		Args:    cobra.NoArgs,
		GroupID: "runtime",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newPrinter(cmd).result(map[string]string{
				"version": buildInfo.BuildVersion(),
				"date":    buildInfo.BuildDate(),
				"commit":  buildInfo.BuildCommit(),
			}, func(p *printer) {
				p.field("Build version", buildInfo.BuildVersion())
				p.field("Build date", buildInfo.BuildDate())
				p.field("Build commit", buildInfo.BuildCommit())
			})
		},
	}
}
