package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/killallgit/podcast-search/internal/database"
	"github.com/killallgit/podcast-search/internal/models"
	"github.com/killallgit/podcast-search/internal/services/catalog"
	"github.com/killallgit/podcast-search/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the schema of the local podcast mirror database.

Available subcommands:
  up      - Create or update the mirror tables
  down    - Drop the mirror tables
  status  - Show which tables exist and how many rows they hold
  prune   - Remove podcasts the catalog has not returned recently`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the mirror tables",
	Long: `Apply the mirror schema to the configured database.

Tables are created when missing and new columns and indexes are added;
existing data is kept.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the mirror tables",
	Long: `Drop every mirror table from the configured database.

All mirrored podcasts are lost. The mirror refills as the API serves
pages from the upstream catalog.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows schema status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the mirror database.

This command shows which tables exist and how many rows each holds.`,
	RunE: runMigrateStatus,
}

// migratePruneCmd removes stale mirror rows
var migratePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove stale mirrored podcasts",
	Long: `Delete mirrored podcasts that the upstream catalog has not returned
within --older-than (defaults to database.prune_after).

The server does this periodically on its own; use this command to prune
on demand.`,
	RunE: runMigratePrune,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	migrateCmd.AddCommand(migratePruneCmd)

	migrateDownCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	migratePruneCmd.Flags().Duration("older-than", 0, "prune podcasts not seen for this long (default database.prune_after)")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func openMirror() (*database.DB, error) {
	path := config.GetString("database.path")
	if path == "" {
		return nil, fmt.Errorf("database.path is empty; the mirror is disabled")
	}
	return database.Initialize(path, config.GetBool("database.verbose"))
}

func tableName(db *database.DB, model any) string {
	stmt := db.DB.Model(model).Statement
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	db, err := openMirror()
	if err != nil {
		return err
	}
	defer db.Close()

	all := models.All()
	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, m := range all {
			fmt.Fprintf(out, "  would migrate %s\n", tableName(db, m))
		}
		return nil
	}

	if err := db.AutoMigrate(all...); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d table(s)\n", len(all))
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	out := cmd.OutOrStdout()

	db, err := openMirror()
	if err != nil {
		return err
	}
	defer db.Close()

	all := models.All()
	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, m := range all {
			fmt.Fprintf(out, "  would drop %s\n", tableName(db, m))
		}
		return nil
	}

	if !yes {
		fmt.Fprintf(out, "WARNING: This will drop %d table(s). Continue? (y/N): ", len(all))
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Migration rollback cancelled")
			return nil
		}
	}

	if err := db.DB.Migrator().DropTable(all...); err != nil {
		return fmt.Errorf("dropping tables: %w", err)
	}
	fmt.Fprintf(out, "Dropped %d table(s)\n", len(all))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openMirror()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "Database: %s\n\n", config.GetString("database.path"))

	for _, m := range models.All() {
		name := tableName(db, m)
		if !db.DB.Migrator().HasTable(m) {
			fmt.Fprintf(out, "  %-20s pending\n", name)
			continue
		}

		var count int64
		if err := db.DB.Model(m).Count(&count).Error; err != nil {
			return fmt.Errorf("counting %s: %w", name, err)
		}
		fmt.Fprintf(out, "  %-20s applied (%d rows)\n", name, count)
	}

	return nil
}

func runMigratePrune(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	olderThan, _ := cmd.Flags().GetDuration("older-than")
	if olderThan == 0 {
		olderThan = config.GetDuration("database.prune_after")
	}
	if olderThan <= 0 {
		return fmt.Errorf("nothing to prune: --older-than or database.prune_after must be positive")
	}
	out := cmd.OutOrStdout()

	db, err := openMirror()
	if err != nil {
		return err
	}
	defer db.Close()

	if !db.DB.Migrator().HasTable(&models.Podcast{}) {
		return fmt.Errorf("mirror is not migrated; run 'migrate up' first")
	}

	cutoff := time.Now().Add(-olderThan)
	if dryRun {
		var stale int64
		if err := db.DB.Model(&models.Podcast{}).Where("last_seen_at < ?", cutoff).Count(&stale).Error; err != nil {
			return fmt.Errorf("counting stale podcasts: %w", err)
		}
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		fmt.Fprintf(out, "  would prune %d podcast(s) last seen before %s\n", stale, cutoff.Format(time.RFC3339))
		return nil
	}

	removed, err := catalog.NewRepository(db.DB).PruneSeenBefore(cmd.Context(), cutoff)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Pruned %d podcast(s) last seen before %s\n", removed, cutoff.Format(time.RFC3339))
	return nil
}
