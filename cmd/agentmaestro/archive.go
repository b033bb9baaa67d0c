package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/database"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

func newArchiveRunsCmd() *cobra.Command {
	var (
		olderThan     int
		limit         int
		compact       bool
		purgeDays     int
		verboseEvents []string
	)

	cmd := &cobra.Command{
		Use:   "archive-runs",
		Short: "Checkpoint terminal runs to disk and optionally compact verbose events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if len(verboseEvents) > 0 {
				cfg.Archive.VerboseEventTypes = verboseEvents
			}
			dbConfig, err := database.LoadConfigFromEnv()
			if err != nil {
				return err
			}
			dbClient, err := database.NewClient(ctx, dbConfig)
			if err != nil {
				return err
			}
			defer func() {
				if err := dbClient.Close(); err != nil {
					slog.Error("Error closing database client", "error", err)
				}
			}()

			// Rate limits do not apply to administrative archival; the
			// bypass flag keeps the snapshot assembly unthrottled.
			quotaMgr := quota.NewManager(quota.NewMemoryKV(), cfg.Quota.KeyPrefix, true)
			snapshots := services.NewSnapshotService(dbClient.Client, quotaMgr)
			archives := services.NewArchiveService(dbClient.Client, snapshots, *cfg.Archive)

			archived, err := archives.ArchiveCompletedRuns(ctx, olderThan, limit, compact)
			if err != nil {
				return err
			}
			slog.Info("Archive sweep complete", "archived", archived)

			if purgeDays > 0 {
				purged, err := archives.PurgeOldArchives(ctx, purgeDays)
				if err != nil {
					return err
				}
				slog.Info("Purge complete", "purged", purged)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&olderThan, "older-than", 7, "Archive runs that ended more than N days ago")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum runs to archive in one sweep (0 = unlimited)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Also delete verbose events past the retention window")
	cmd.Flags().StringSliceVar(&verboseEvents, "verbose-events", nil,
		"Event types compacted as verbose (overrides VERBOSE_EVENT_TYPES)")
	cmd.Flags().IntVar(&purgeDays, "purge-older-than", 0, "Delete archive bundles older than N days (0 = keep)")
	return cmd
}
