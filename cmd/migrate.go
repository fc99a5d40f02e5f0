package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sollearn/docrag/db"
	"github.com/sollearn/docrag/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Applies any pending schema migrations to the configured PostgreSQL
database. "ingest" runs this automatically; the standalone command exists
for provisioning a database ahead of time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if err := db.Migrate(cfg.PostgresURL()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		fmt.Println("Migrations applied.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
