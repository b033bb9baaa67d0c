// AgentMaestro orchestrator server. It provides the HTTP/WebSocket API,
// runs tick workers, and evaluates subrun join and failure policies.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agentmaestro/agentmaestro/pkg/version"
)

func main() {
	root := &cobra.Command{
		Use:     "agentmaestro",
		Short:   "Multi-tenant agent-run orchestration engine",
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			envFile, _ := cmd.Flags().GetString("env-file")
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("Could not load env file, continuing with existing environment",
					"path", envFile, "error", err)
			}
		},
	}
	root.PersistentFlags().String("env-file", ".env", "Path to environment file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newArchiveRunsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolvePodID determines the replica identifier used in worker lease
// fields. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}
