package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"vc-go/internal/app"
	"vc-go/internal/config"
	"vc-go/internal/vc"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a VCApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "CreateSnapshot", "Commit").
func newApp(operation string) (*app.VCApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewVCApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "vc",
	Short: "Local version control companion: snapshots, journal, git commits",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Generate a new project ID
		projectID := uuid.New().String()

		// Create config with defaults
		cfg := config.NewConfig(projectID, defaults["project_root"])

		// Initialize config file
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Project ID:   %s\n", projectID)
		fmt.Printf("Project Root: %s\n", defaults["project_root"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Project ID:   %s\n", cfg.ProjectID)
		fmt.Printf("Project Root: %s\n", cfg.ProjectRoot)
		fmt.Printf("State Dir:    %s\n", cfg.StateDir)
		fmt.Printf("Source Dirs:  %s\n", strings.Join(cfg.SourceDirs, ", "))
		fmt.Printf("Log Dir:      %s\n", cfg.LogDir)
		return nil
	},
}

// snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [daily|hourly|before-change]",
	Short: "Create a snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := string(vc.Daily)
		if len(args) > 0 {
			category = args[0]
		}

		a, err := newApp("CreateSnapshot")
		if err != nil {
			return err
		}
		defer a.Close()

		path, err := a.CreateSnapshot(category)
		if err != nil {
			return fmt.Errorf("creating snapshot: %w", err)
		}

		fmt.Printf("Snapshot created: %s\n", path)
		return nil
	},
}

// commit command
var commitCmd = &cobra.Command{
	Use:   "commit MESSAGE [TYPE]",
	Short: "Create a git commit",
	Long:  "Create a git commit. TYPE is one of: " + strings.Join(vc.CommitTypes, ", ") + " (default chore).",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := args[0]
		commitType := "chore"
		if len(args) > 1 {
			commitType = args[1]
		}

		a, err := newApp("Commit")
		if err != nil {
			return err
		}
		defer a.Close()

		hash, created, err := a.Commit(message, commitType)
		if err != nil {
			return fmt.Errorf("committing: %w", err)
		}

		if created {
			fmt.Printf("Commit created: %s\n", hash)
		} else {
			fmt.Println("No changes to commit")
		}
		return nil
	},
}

// journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Journal operations",
}

var journalAddCmd = &cobra.Command{
	Use:   "add DESCRIPTION",
	Short: "Record a change (takes a protective snapshot first)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, _ := cmd.Flags().GetStringSlice("files")

		a, err := newApp("RecordChange")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := a.RecordChange(args[0], files)
		if err != nil {
			return fmt.Errorf("recording change: %w", err)
		}

		fmt.Printf("Journal entry created: %s\n", id)
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListJournal")
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.JournalEntries(10)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No journal entries.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("[%s] %s: %s\n", e.Timestamp.Format(time.RFC3339), e.Type, e.Description)
		}
		return nil
	},
}

// status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show version control status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetStatus")
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.Status()
		if err != nil {
			return err
		}

		fmt.Println("=== Version Control Status ===")
		fmt.Println()
		fmt.Printf("Git: %s\n", report.Git.Status)
		if report.Git.HasChanges {
			fmt.Println("  !  Uncommitted changes")
		}
		fmt.Printf("  Commits: %d\n", report.Git.CommitsCount)
		fmt.Println()
		fmt.Println("Snapshots:")
		fmt.Printf("  Daily: %d\n", report.Snapshots.Daily)
		fmt.Printf("  Hourly: %d\n", report.Snapshots.Hourly)
		fmt.Printf("  Before-change: %d\n", report.Snapshots.BeforeChange)
		fmt.Println()
		fmt.Println("Journal:")
		fmt.Printf("  Entries: %d\n", report.Journal.EntriesCount)
		fmt.Printf("  Total changes: %d\n", report.Journal.TotalChanges)
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View CLI operation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("GetHistory")
		if err != nil {
			return err
		}
		defer a.Close()

		ops, err := a.History(limit)
		if err != nil {
			return err
		}

		if len(ops) == 0 {
			fmt.Println("No operations recorded.")
			return nil
		}

		for _, op := range ops {
			duration := ""
			if op.FinishedAt != nil {
				d := op.FinishedAt.Sub(op.StartedAt)
				duration = d.Truncate(time.Millisecond).String()
			}
			fmt.Printf("#%d  %-15s  %s  %-10s  %s\n",
				op.ID,
				op.Operation,
				op.StartedAt.Format("2006-01-02 15:04:05"),
				op.Status,
				duration,
			)
		}
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// journal subcommands
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalAddCmd.Flags().StringSlice("files", nil, "Affected files")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
}
