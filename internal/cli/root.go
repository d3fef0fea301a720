// Package cli implements the itemsync command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/models"
)

const flagJSON = "json"

// NewRootCommand builds the itemsync command tree. Every command accepts the
// configuration flags; environment variables and a JSON config file fill in
// whatever the flags leave unset.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "itemsync",
		Short:         "Synchronise a local item store with remote snapshots",
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().Bool(flagJSON, false, "Output in JSON format")

	root.AddGroup(
		&cobra.Group{ID: "sync", Title: "Sync Operations:"},
		&cobra.Group{ID: "conflicts", Title: "Conflicts:"},
		&cobra.Group{ID: "runtime", Title: "Runtime:"},
	)

	root.AddCommand(
		newPushCommand(buildInfo),
		newPullCommand(buildInfo),
		newMergeCommand(buildInfo),
		newStatusCommand(buildInfo),
		newConflictsCommand(buildInfo),
		newResolveCommand(buildInfo),
		newServeCommand(buildInfo),
		newVersionCommand(buildInfo),
	)

	return root
}

// withApp loads the configuration from cmd's flags, builds the App, runs fn
// and closes the App again.
func withApp(cmd *cobra.Command, buildInfo models.AppBuildInfo, fn func(ctx context.Context, app *client.App) error) error {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewClientLogger("itemsync", cfg.Log.File).WithLevel(cfg.Log.Level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(ctx, app)
}
