package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/agentmaestro/agentmaestro/pkg/api"
	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/database"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/executor"
	"github.com/agentmaestro/agentmaestro/pkg/masking"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/services"
	"github.com/agentmaestro/agentmaestro/pkg/toolrunner"
	"github.com/agentmaestro/agentmaestro/pkg/version"
)

func newServeCmd() *cobra.Command {
	var memoryQuota bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the orchestrator: HTTP/WS API, tick workers and recovery",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), memoryQuota)
		},
	}
	cmd.Flags().BoolVar(&memoryQuota, "memory-quota", false,
		"Use in-process quota counters instead of Redis (single-replica only)")
	return cmd
}

func runServe(ctx context.Context, memoryQuota bool) error {
	podID := resolvePodID()
	slog.Info("Starting AgentMaestro", "version", version.Full(), "pod_id", podID)

	cfg, err := config.Load()
	if err != nil {
		return err
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
	slog.Info("Connected to PostgreSQL database")

	// Quota backend. Redis keeps limits honest across replicas; the
	// in-memory KV is for single-replica development.
	var kv quota.KV
	if memoryQuota {
		kv = quota.NewMemoryKV()
		slog.Warn("Using in-process quota counters; limits do not span replicas")
	} else {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Quota.RedisAddr,
			Password: cfg.Quota.RedisPassword,
			DB:       cfg.Quota.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		defer rdb.Close()
		kv = quota.NewRedisKV(rdb)
		slog.Info("Connected to Redis quota backend", "addr", cfg.Quota.RedisAddr)
	}
	quotaMgr := quota.NewManager(kv, cfg.Quota.KeyPrefix, cfg.Quota.BypassRateLimits)

	machine := runstate.NewMachine(quotaMgr)
	pool := executor.NewPool(podID, dbClient.Client, cfg.Executor, quotaMgr, machine)

	runner := toolrunner.NewClient(*cfg.Toolrunner)
	masker := masking.NewService()
	runService := services.NewRunService(dbClient.Client, quotaMgr, machine, pool)
	subrunService := services.NewSubrunService(dbClient.Client, quotaMgr, machine, pool, cfg.Executor.MaxPendingSubrunsPerParent)
	toolCallService := services.NewToolCallService(dbClient.Client, quotaMgr, machine, pool, runner, masker, *cfg.Toolrunner)
	snapshotService := services.NewSnapshotService(dbClient.Client, quotaMgr)
	workspaceService := services.NewWorkspaceService(dbClient.Client)

	// The run and subrun services reference each other; wire late.
	runService.SetCompleter(subrunService)
	pool.SetSubruns(subrunService)
	pool.SetRecovery(executor.NewRecovery(dbClient.Client, machine, pool, cfg.Executor.Lease()))
	slog.Info("Services initialized")

	// Real-time push: WebSocket manager fed by PostgreSQL NOTIFY.
	cmdHandler := api.NewWSCommandHandler(runService, subrunService, toolCallService, snapshotService)
	connManager := events.NewConnectionManager(cmdHandler, cfg.Server.WSWriteTimeout)
	listener := events.NewListener(dbConfig.DSN(), connManager)
	if err := listener.Start(ctx); err != nil {
		return err
	}
	connManager.SetListener(listener)
	slog.Info("Event listener started")

	if err := pool.Start(ctx); err != nil {
		return err
	}

	httpServer := api.NewServer(cfg, dbClient, quotaMgr,
		runService, subrunService, toolCallService, snapshotService, workspaceService,
		pool, connManager)

	serverErrors := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Block until a signal or a server failure.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrors:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Drain workers first so in-flight ticks commit or release leases.
	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(cfg.Executor.GracefulShutdownTimeout):
		slog.Warn("Shutdown timeout exceeded; stale leases will be reclaimed by peers")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	listenerStopCtx, listenerCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer listenerCancel()
	listener.Stop(listenerStopCtx)

	slog.Info("Shutdown complete")
	return nil
}
