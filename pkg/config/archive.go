package config

import "fmt"

// ArchiveConfig controls run archival and event compaction.
type ArchiveConfig struct {
	// Root is the filesystem directory holding archive bundles,
	// one subdirectory per run.
	Root string

	// EventRetentionDays is how long verbose events are kept before
	// compaction removes them.
	EventRetentionDays int

	// VerboseEventTypes lists the event types eligible for compaction.
	VerboseEventTypes []string

	// Compress wraps checkpoint JSON files in a ZIP archive.
	Compress bool
}

// LoadArchiveConfig reads archival knobs from the environment.
func LoadArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{
		Root:               envString("ARCHIVE_ROOT", "./archives"),
		EventRetentionDays: envInt("EVENT_RETENTION_DAYS", 30),
		VerboseEventTypes:  envStringList("VERBOSE_EVENT_TYPES", []string{"token_stream", "debug_log"}),
		Compress:           envBool("ARCHIVE_COMPRESS", true),
	}
}

// Validate checks archival configuration invariants.
func (c *ArchiveConfig) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("archive root must not be empty")
	}
	if c.EventRetentionDays < 0 {
		return fmt.Errorf("event retention days must not be negative, got %d", c.EventRetentionDays)
	}
	return nil
}
