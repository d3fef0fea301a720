package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/models"
)

func newConflictsCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "conflicts",
		Short:   "List items that differ from the last recorded snapshot",
		Args:    cobra.NoArgs,
		GroupID: "conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, buildInfo, func(ctx context.Context, app *client.App) error {
				conflicts, err := app.Sync().GetConflicts(ctx)
				if err != nil {
					return err
				}
				resp := models.ConflictsResponse{Conflicts: conflicts, Length: len(conflicts)}
				return newPrinter(cmd).result(resp, func(p *printer) {
					if len(conflicts) == 0 {
						p.success("no conflicts")
						return
					}
					for _, c := range conflicts {
						p.line(fmt.Sprintf("%-12s %s", c.Kind, c.ID))
					}
				})
			})
		},
	}
}

func newResolveCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	var keep string

	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Resolve one conflict and push",
		Long: `Resolve the conflict on one item and push the local store.

--keep remote makes the local store hold the snapshot's version of the item,
deleting it locally when the snapshot does not have it. --keep local leaves
the local store as is.`,
		Args:    cobra.ExactArgs(1),
		GroupID: "conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolution, err := models.ParseResolution(strings.ToLower(keep))
			if err != nil {
				return err
			}

			return withApp(cmd, buildInfo, func(ctx context.Context, app *client.App) error {
				conflicts, err := app.Sync().GetConflicts(ctx)
				if err != nil {
					return err
				}

				var target *models.Conflict
				for i := range conflicts {
					if conflicts[i].ID == args[0] {
						target = &conflicts[i]
						break
					}
				}
				if target == nil {
					return fmt.Errorf("no conflict on item %q", args[0])
				}

				pushed, err := app.Sync().ResolveConflict(ctx, *target, resolution)
				if err != nil {
					return err
				}
				return newPrinter(cmd).result(models.ResolveResponse{Pushed: pushed}, func(p *printer) {
					p.success(fmt.Sprintf("resolved %s (%s)", target.ID, resolution))
					if !pushed {
						p.line("nothing changed since the last push")
					}
				})
			})
		},
	}
	cmd.Flags().StringVar(&keep, "keep", "", "Side to keep: local or remote")
	_ = cmd.MarkFlagRequired("keep")

	return cmd
}
