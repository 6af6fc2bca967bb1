package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/iostore"
	"github.com/oakline/prism/schema"
)

// resolveStoreTarget reads the backend and connection string from viper and
// applies the SQLite default path. Shared by the store subcommand setups.
func resolveStoreTarget() (schema.StoreBackend, string, error) {
	backend := schema.StoreBackend(viper.GetString("store-backend"))
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return "", "", fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql, or none", backend)
	}
	connStr := viper.GetString("store-connect")
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}
	if (backend == schema.MySQLBackend || backend == schema.PostgreSQLBackend) && connStr == "" {
		return "", "", fmt.Errorf("store-connect is required for the %s backend", backend)
	}
	return backend, connStr, nil
}

// storeSetup loads minimal configuration needed for store operations.
// This avoids the full shared setup for simple maintenance commands.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := resolveStoreTarget()
	if err != nil {
		return err
	}

	if err := iostore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreConnStr = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMaintenanceSetup loads configuration without initializing stores or
// creating tables, so clear and migrate can run against a fresh or broken
// database.
func storeMaintenanceSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := resolveStoreTarget()
	if err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreConnStr = connStr

	return nil
}

// storeMaintenanceSetupWrapper wraps storeMaintenanceSetup for PreRunE.
func storeMaintenanceSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMaintenanceSetup()
}

// storeCmd focused on store management.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the assessment and report store",
	Long: `Manage the persistence layer backing assessments, weights and reports.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (no
persistence; reports print but are not stored).

Subcommands:
  status  - Show store statistics and connection details
  clear   - Remove all stored data
  migrate - Run database schema migrations

Examples:
  # Check store health
  prism store status

  # Clear everything and start fresh
  prism store clear`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the configured store.

Displays:
- Backend type and connection status
- Total number of report snapshots
- Last snapshot id and timestamp
- Per-table row counts

Examples:
  # Check store status
  prism store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iostore.Manager.ReportsImpl()
		if store == nil {
			iostore.PrintStoreStatus(schema.StoreStatus{Backend: string(schema.NoneBackend)})
			return
		}
		status, err := store.GetStatus(context.Background())
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		iostore.PrintStoreStatus(status)
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored assessments, weights and reports",
	Long: `Delete all stored data from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the prism tables

WARNING: This action cannot be undone. Consider exporting first.

Examples:
  # Export before clearing
  prism export --output-file backup
  prism store clear`,
	PreRunE: storeMaintenanceSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ClearStore(cfg.StoreBackend, cfg.StoreConnStr); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations for the store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  prism store migrate

  # Migrate to specific version
  prism store migrate --target-version 2

  # Rollback to initial state
  prism store migrate --target-version 0`,
	PreRunE: storeMaintenanceSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateStore(cfg.StoreBackend, cfg.StoreConnStr, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
