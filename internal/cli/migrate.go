package cli

import (
	"fmt"

	"lookup-console/internal/config"
	"lookup-console/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the audit database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(cfg *config.Config, db *database.DB) error {
				if cfg.Database.Driver != config.DriverPostgres {
					if err := db.AutoMigrate(); err != nil {
						return fmt.Errorf("failed to migrate: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
					return nil
				}

				runner, err := migrationRunner(db)
				if err != nil {
					return err
				}
				if err := runner.RunMigrations(); err != nil {
					return err
				}
				return printStatus(cmd, runner)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPostgres(cmd, func(runner *database.MigrationRunner) error {
				if err := runner.RollbackLast(); err != nil {
					return err
				}
				return printStatus(cmd, runner)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the applied migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPostgres(cmd, func(runner *database.MigrationRunner) error {
				names, err := runner.MigrationNames()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return printStatus(cmd, runner)
			})
		},
	})

	return cmd
}

func withDatabase(fn func(cfg *config.Config, db *database.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(cfg, db)
}

func withPostgres(cmd *cobra.Command, fn func(runner *database.MigrationRunner) error) error {
	return withDatabase(func(cfg *config.Config, db *database.DB) error {
		if cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("SQL migrations need DB_DRIVER=%s, got %s", config.DriverPostgres, cfg.Database.Driver)
		}

		runner, err := migrationRunner(db)
		if err != nil {
			return err
		}
		return fn(runner)
	})
}

func migrationRunner(db *database.DB) (*database.MigrationRunner, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := database.NewMigrationRunner(sqlDB)
	if err := runner.WaitForDatabase(); err != nil {
		return nil, err
	}
	return runner, nil
}

func printStatus(cmd *cobra.Command, runner *database.MigrationRunner) error {
	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
	return nil
}
