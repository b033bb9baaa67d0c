package services

import (
	"archive/zip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/test/util"
)

func newArchiveService(t *testing.T, env *testEnv, compress bool) *ArchiveService {
	t.Helper()
	return NewArchiveService(env.client, env.snapshots, config.ArchiveConfig{
		Root:               t.TempDir(),
		EventRetentionDays: 30,
		VerboseEventTypes:  []string{events.EventTokenStream, events.EventDebugLog},
		Compress:           compress,
	})
}

// seedJournal appends a step and a verbose event to the run.
func seedJournal(t *testing.T, env *testEnv, runID string) {
	t.Helper()
	ctx := context.Background()
	err := journal.WithTx(ctx, env.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		locked, err := journal.LockRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		if _, locked, err = journal.AppendStep(ctx, tx, locked, agentstep.KindModelCall, nil); err != nil {
			return err
		}
		_, err = journal.AppendEvent(ctx, tx, locked, events.EventTokenStream, map[string]any{"chunk": "..."})
		return err
	})
	require.NoError(t, err)
}

func TestCreateCheckpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("writes the snapshot and records the archive", func(t *testing.T) {
		svc := newArchiveService(t, env, false)
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusCompleted)
		seedJournal(t, env, run.ID)

		archive, err := svc.CreateCheckpoint(ctx, run.ID, false)
		require.NoError(t, err)
		assert.Equal(t, run.ID, archive.RunID)
		assert.Contains(t, archive.Summary, "1 steps")

		body, err := os.ReadFile(archive.ArchivePath)
		require.NoError(t, err)
		var snap models.SnapshotResponse
		require.NoError(t, json.Unmarshal(body, &snap))
		assert.Equal(t, run.ID, snap.Run.ID)
		require.Len(t, snap.Steps, 1)

		// The checkpoint itself is journaled.
		evt, err := env.client.RunEvent.Query().
			Where(runevent.RunIDEQ(run.ID), runevent.EventTypeEQ(events.EventRunArchived)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, archive.ID, evt.Payload["archive_id"])
	})

	t.Run("compressed checkpoint is a readable zip", func(t *testing.T) {
		svc := newArchiveService(t, env, true)
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusCompleted)
		seedJournal(t, env, run.ID)

		archive, err := svc.CreateCheckpoint(ctx, run.ID, true)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(archive.ArchivePath, ".zip"))

		zr, err := zip.OpenReader(archive.ArchivePath)
		require.NoError(t, err)
		defer func() { _ = zr.Close() }()
		require.Len(t, zr.File, 1)

		rc, err := zr.File[0].Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		var snap models.SnapshotResponse
		require.NoError(t, json.NewDecoder(rc).Decode(&snap))
		assert.Equal(t, run.ID, snap.Run.ID)
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		svc := newArchiveService(t, env, false)
		_, err := svc.CreateCheckpoint(ctx, "no-such-run", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCompactEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	svc := newArchiveService(t, env, false)

	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusCompleted)
	seedJournal(t, env, run.ID)

	// Seed aged events directly; created_at is immutable once written.
	old := time.Now().Add(-40 * 24 * time.Hour)
	for seq, eventType := range map[int]string{
		10: events.EventTokenStream,
		11: events.EventStateChanged,
	} {
		_, err := env.client.RunEvent.Create().
			SetID(uuid.New().String()).
			SetRunID(run.ID).
			SetSeq(seq).
			SetEventType(eventType).
			SetCreatedAt(old).
			Save(ctx)
		require.NoError(t, err)
	}

	n, err := svc.CompactEvents(ctx, run.ID, 30, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the aged verbose event is compacted")

	// Durable event types survive compaction regardless of age; the
	// recent verbose event survives the retention window.
	types := map[string]int{}
	remaining, err := env.client.RunEvent.Query().
		Where(runevent.RunIDEQ(run.ID)).
		All(ctx)
	require.NoError(t, err)
	for _, e := range remaining {
		types[e.EventType]++
	}
	assert.Equal(t, 1, types[events.EventTokenStream], "the recent token_stream event remains")
	assert.Equal(t, 1, types[events.EventStateChanged])
	assert.Equal(t, 1, types[events.EventStepCreated])
}

func TestArchiveCompletedRuns(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	svc := newArchiveService(t, env, false)

	endRun := func(status agentrun.Status, endedDaysAgo int) *ent.AgentRun {
		run := util.CreateRunFixture(t, env.client, ws, status)
		if endedDaysAgo >= 0 {
			ended := time.Now().UTC().Add(-time.Duration(endedDaysAgo) * 24 * time.Hour)
			_, err := env.client.AgentRun.UpdateOneID(run.ID).SetEndedAt(ended).Save(ctx)
			require.NoError(t, err)
		}
		return run
	}

	oldDone := endRun(agentrun.StatusCompleted, 10)
	oldFailed := endRun(agentrun.StatusFailed, 9)
	recentDone := endRun(agentrun.StatusCompleted, 1)
	live := endRun(agentrun.StatusRunning, -1)

	n, err := svc.ArchiveCompletedRuns(ctx, 7, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{oldDone.ID, oldFailed.ID} {
		got, err := env.client.AgentRun.Get(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, got.ArchivedAt, "old terminal run %s is archived", id)
	}
	for _, id := range []string{recentDone.ID, live.ID} {
		got, err := env.client.AgentRun.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got.ArchivedAt, "run %s must not be archived", id)
	}

	// The sweep is idempotent: archived runs are skipped next time.
	n, err = svc.ArchiveCompletedRuns(ctx, 7, 0, false)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPurgeOldArchives(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	svc := newArchiveService(t, env, false)

	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusCompleted)
	fresh, err := svc.CreateCheckpoint(ctx, run.ID, false)
	require.NoError(t, err)

	// An aged archive record with a real file; created_at is immutable
	// so the row is seeded directly.
	oldPath := filepath.Join(t.TempDir(), "run_snapshot_old.json")
	require.NoError(t, os.WriteFile(oldPath, []byte("{}"), 0o644))
	aged, err := env.client.RunArchive.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetArchivePath(oldPath).
		SetCreatedAt(time.Now().Add(-100 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	n, err := svc.PurgeOldArchives(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err), "aged archive file removed from disk")

	_, err = env.client.RunArchive.Get(ctx, aged.ID)
	assert.True(t, ent.IsNotFound(err))

	// The recent archive is untouched.
	_, err = os.Stat(fresh.ArchivePath)
	assert.NoError(t, err)
}
