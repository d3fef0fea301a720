package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/models"
)

func newPushCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "push",
		Short:   "Publish a snapshot of the local store if it changed",
		Args:    cobra.NoArgs,
		GroupID: "sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, buildInfo, func(ctx context.Context, app *client.App) error {
				pushed, err := app.Sync().Push(ctx)
				if err != nil {
					return err
				}
				return newPrinter(cmd).result(models.PushResponse{Pushed: pushed}, func(p *printer) {
					if pushed {
						p.success("snapshot published")
					} else {
						p.line("nothing changed since the last push")
					}
				})
			})
		},
	}
}

func newPullCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "pull",
		Short:   "Replace the local store with the last recorded snapshot",
		Args:    cobra.NoArgs,
		GroupID: "sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, buildInfo, func(ctx context.Context, app *client.App) error {
				if err := app.Sync().Pull(ctx); err != nil {
					return err
				}
				return newPrinter(cmd).result(map[string]bool{"pulled": true}, func(p *printer) {
					p.success("local store restored from snapshot")
				})
			})
		},
	}
}

func newMergeCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "merge",
		Short:   "Merge the last snapshot into the local store and publish the result",
		Args:    cobra.NoArgs,
		GroupID: "sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, buildInfo, func(ctx context.Context, app *client.App) error {
				result, err := app.Sync().Merge(ctx)
				if err != nil {
					return err
				}
				return newPrinter(cmd).result(result, func(p *printer) {
					p.success(fmt.Sprintf("merged: %d updated, %d inserted", result.Updated, result.Inserted))
					p.field("Snapshot", result.Key)
				})
			})
		},
	}
}

func newStatusCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show the sync bookkeeping and whether both sides diverged",
		Args:    cobra.NoArgs,
		GroupID: "sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, buildInfo, func(ctx context.Context, app *client.App) error {
				status, err := app.Sync().GetSyncStatus(ctx)
				if err != nil {
					return err
				}
				return newPrinter(cmd).result(status, func(p *printer) {
					p.field("Snapshot", orDash(status.LastKey))
					p.field("Last push", formatTime(status.LastPushAt))
					p.field("Last pull", formatTime(status.LastPullAt))
					p.field("Last merge", formatTime(status.LastMergeAt))
					if status.HasConflict {
						p.warning("local and remote changed independently, run merge or resolve conflicts")
					} else {
						p.success("no conflict")
					}
				})
			})
		},
	}
}
