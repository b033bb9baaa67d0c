package services

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
)

// checkpointTimeFormat names checkpoint files; UTC, filesystem-safe.
const checkpointTimeFormat = "20060102T150405Z"

// ArchiveService writes run checkpoints to the archive directory,
// compacts verbose events and sweeps terminal runs into archives.
type ArchiveService struct {
	client    *ent.Client
	snapshots *SnapshotService
	cfg       config.ArchiveConfig
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(client *ent.Client, snapshots *SnapshotService, cfg config.ArchiveConfig) *ArchiveService {
	return &ArchiveService{client: client, snapshots: snapshots, cfg: cfg}
}

// CreateCheckpoint serializes the run's full snapshot to
// <root>/<run_id>/run_snapshot_<ts>.json (ZIP-wrapped when compress),
// records a RunArchive row and emits run_archived on the run and
// workspace streams.
func (s *ArchiveService) CreateCheckpoint(ctx context.Context, runID string, compress bool) (*ent.RunArchive, error) {
	run, err := s.client.AgentRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get run: %w", err)
	}

	snap, err := s.snapshots.assemble(ctx, run, 0)
	if err != nil {
		return nil, err
	}
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal checkpoint: %w", err)
	}

	dir := filepath.Join(s.cfg.Root, run.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	name := fmt.Sprintf("run_snapshot_%s.json", time.Now().UTC().Format(checkpointTimeFormat))
	path := filepath.Join(dir, name)
	if compress {
		path += ".zip"
		if err := writeZip(path, name, body); err != nil {
			return nil, err
		}
	} else {
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return nil, fmt.Errorf("write checkpoint: %w", err)
		}
	}

	var archive *ent.RunArchive
	err = journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		locked, err := journal.LockRun(ctx, tx, run.ID)
		if err != nil {
			return err
		}

		archive, err = tx.RunArchive.Create().
			SetID(uuid.New().String()).
			SetRunID(locked.ID).
			SetArchivePath(path).
			SetSummary(fmt.Sprintf("%d steps, %d events, status %s",
				len(snap.Steps), len(snap.Events), locked.Status)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create archive record: %w", err)
		}

		_, err = journal.AppendEvent(ctx, tx, locked, events.EventRunArchived, map[string]any{
			"archive_id":   archive.ID,
			"archive_path": path,
		}, journal.WithWorkspaceCopy(events.EventRunArchived))
		return err
	})
	if err != nil {
		return nil, err
	}
	return archive, nil
}

func writeZip(path, inner string, body []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create checkpoint zip: %w", err)
	}
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	w, err := zw.Create(inner)
	if err != nil {
		return fmt.Errorf("add checkpoint to zip: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write checkpoint zip: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize checkpoint zip: %w", err)
	}
	return f.Close()
}

// CompactEvents deletes events of the given types older than the
// retention window. Only verbose diagnostic types should be listed;
// compaction is the one sanctioned gap in a run's seq history.
func (s *ArchiveService) CompactEvents(ctx context.Context, runID string, retentionDays int, verboseTypes []string) (int, error) {
	if retentionDays <= 0 {
		retentionDays = s.cfg.EventRetentionDays
	}
	if len(verboseTypes) == 0 {
		verboseTypes = s.cfg.VerboseEventTypes
	}
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	n, err := s.client.RunEvent.Delete().
		Where(
			runevent.RunIDEQ(runID),
			runevent.EventTypeIn(verboseTypes...),
			runevent.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("compact events of run %s: %w", runID, err)
	}
	return n, nil
}

// ArchiveCompletedRuns checkpoints terminal runs that ended before the
// cutoff and have not been archived yet, oldest first. Returns the
// number of runs archived. limit <= 0 means no limit.
func (s *ArchiveService) ArchiveCompletedRuns(ctx context.Context, olderThanDays, limit int, compact bool) (int, error) {
	cutoff := time.Now().Add(-time.Duration(olderThanDays) * 24 * time.Hour)

	q := s.client.AgentRun.Query().
		Where(
			agentrun.StatusIn(terminalStatuses...),
			agentrun.EndedAtLTE(cutoff),
			agentrun.ArchivedAtIsNil(),
		).
		Order(ent.Asc(agentrun.FieldEndedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	runs, err := q.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query archivable runs: %w", err)
	}

	archived := 0
	for _, run := range runs {
		if _, err := s.CreateCheckpoint(ctx, run.ID, s.cfg.Compress); err != nil {
			slog.Error("Checkpoint failed during archive sweep", "run_id", run.ID, "error", err)
			continue
		}
		if compact {
			if _, err := s.CompactEvents(ctx, run.ID, s.cfg.EventRetentionDays, s.cfg.VerboseEventTypes); err != nil {
				slog.Error("Compaction failed during archive sweep", "run_id", run.ID, "error", err)
			}
		}
		if _, err := s.client.AgentRun.UpdateOneID(run.ID).
			SetArchivedAt(time.Now().UTC()).
			Save(ctx); err != nil {
			slog.Error("Failed to stamp archived_at", "run_id", run.ID, "error", err)
			continue
		}
		archived++
	}
	return archived, nil
}

// PurgeOldArchives deletes archive records and their on-disk files
// older than the cutoff. Missing files are tolerated.
func (s *ArchiveService) PurgeOldArchives(ctx context.Context, olderThanDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(olderThanDays) * 24 * time.Hour)

	archives, err := s.client.RunArchive.Query().
		Where(runarchive.CreatedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query old archives: %w", err)
	}

	purged := 0
	for _, a := range archives {
		if err := os.Remove(a.ArchivePath); err != nil && !os.IsNotExist(err) {
			slog.Warn("Failed to remove archive file", "path", a.ArchivePath, "error", err)
		}
		if err := s.client.RunArchive.DeleteOneID(a.ID).Exec(ctx); err != nil {
			slog.Error("Failed to delete archive record", "archive_id", a.ID, "error", err)
			continue
		}
		purged++
	}
	return purged, nil
}
