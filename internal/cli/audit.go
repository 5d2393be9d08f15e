package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"lookup-console/internal/config"
	"lookup-console/internal/database"
	"lookup-console/internal/models"
	"lookup-console/internal/repositories"
	"lookup-console/internal/services"

	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the console audit trail",
	}
	cmd.AddCommand(newAuditListCmd())
	cmd.AddCommand(newAuditPurgeCmd())
	return cmd
}

func newAuditListCmd() *cobra.Command {
	var (
		filter models.AuditFilter
		since  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if since > 0 {
				filter.Since = time.Now().Add(-since)
			}

			return withAudit(func(_ *config.Config, audit services.AuditServiceInterface) error {
				entries, total, err := audit.List(filter)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "TIME\tCONSOLE\tOPERATOR\tACTION\tOUTCOME\tDETAIL")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						e.CreatedAt.Format(time.RFC3339), e.ConsoleID, e.Operator, e.Action, e.Outcome, e.Detail)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d entries\n", len(entries), total)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter.ConsoleID, "console", "", "Only entries of this console id")
	cmd.Flags().StringVar(&filter.Operator, "operator", "", "Only entries of this operator")
	cmd.Flags().StringVar(&filter.Action, "action", "", "Only entries of this action")
	cmd.Flags().DurationVar(&since, "since", 0, "Only entries newer than this (e.g. 24h)")
	cmd.Flags().IntVar(&filter.Limit, "limit", 50, "Maximum number of entries")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "Entries to skip")
	return cmd
}

func newAuditPurgeCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete audit entries past the retention period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAudit(func(cfg *config.Config, audit services.AuditServiceInterface) error {
				retention := olderThan
				if retention == 0 {
					retention = cfg.Database.AuditRetention
				}

				deleted, err := audit.Purge(retention)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d entries older than %s\n", deleted, retention)
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Retention to apply instead of AUDIT_RETENTION")
	return cmd
}

func withAudit(fn func(cfg *config.Config, audit services.AuditServiceInterface) error) error {
	return withDatabase(func(cfg *config.Config, db *database.DB) error {
		if cfg.Database.Driver == config.DriverSQLite {
			if err := db.AutoMigrate(); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
		}
		return fn(cfg, services.NewAuditService(repositories.NewAuditLogRepository(db.DB)))
	})
}
