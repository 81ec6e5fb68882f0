package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khendrix/atltech/internal/logger"
	"github.com/khendrix/atltech/internal/rules"
	"github.com/khendrix/atltech/internal/storage"
)

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitNewEntries = 2
)

var (
	flagDataDir string
	flagFormat  string
	flagRules   string
	flagVerbose bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atltech",
		Short: "Regenerate and inspect the Atlanta tech resource catalog",
		Long: `A CLI tool that turns the community-maintained Atlanta tech resources
spreadsheet into the typed, tagged catalog the directory site ships as
static data. Tracks listings across runs and reports newly added resources.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logger.LevelInfo
			if flagVerbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, os.Stderr))
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", storage.DefaultDataDir, "Data directory for catalog snapshots")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().StringVar(&flagRules, "rules", "", "YAML file overriding the built-in keyword rules")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConferencesCmd())
	cmd.AddCommand(newTagsCmd())
	cmd.AddCommand(newEnrichCmd())

	return cmd
}

// loadRules returns the active rule set: the built-in defaults, or the
// --rules file when given.
func loadRules() (*rules.Set, error) {
	if flagRules == "" {
		return rules.Defaults(), nil
	}
	return rules.Load(flagRules)
}

// openStorage creates the snapshot store for the configured data dir.
func openStorage() (*storage.Storage, error) {
	store, err := storage.New(flagDataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

// loadSnapshot loads the previous snapshot and fails with a hint when no
// catalog has been generated yet.
func loadSnapshot() (*storage.Snapshot, error) {
	store, err := openStorage()
	if err != nil {
		return nil, err
	}

	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if snap.Catalog == nil {
		return nil, fmt.Errorf("no catalog snapshot found; run 'atltech generate' first")
	}

	return snap, nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
