package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"aitrip/internal/config"
	"aitrip/internal/infra"
	"aitrip/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, log *zap.Logger) error {
		return infra.MigrateUp(cmd.Context(), db, log)
	}),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, log *zap.Logger) error {
		return infra.MigrateDown(cmd.Context(), db, log)
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations are applied",
	RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, log *zap.Logger) error {
		statuses, err := infra.MigrationStatuses(cmd.Context(), db)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tAPPLIED\tFILE")
		for _, s := range statuses {
			fmt.Fprintf(w, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
		}
		return w.Flush()
	}),
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func withDB(run func(cmd *cobra.Command, db *gorm.DB, log *zap.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dsn, err := config.DatabaseURL()
		if err != nil {
			return err
		}
		log, err := logger.New(os.Getenv("LOG_LEVEL"))
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := infra.InitPostgresql(dsn, log)
		if err != nil {
			return err
		}
		defer infra.ClosePostgresql(db, log)

		return run(cmd, db, log)
	}
}
