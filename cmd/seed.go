package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rana718/groundwork/internal/seeder"
	"github.com/Rana718/groundwork/internal/seeds"
)

var seedUnit string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run the reference-data seeders",
	Long: `
Run every registered seeder in order. Each seeder checks the current data
first and skips itself when it has already been applied, so the command is
safe to run on every deploy.

Examples:
  groundwork seed
  groundwork seed --unit RolesSeeder`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		conn, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		units := seeds.All()
		if seedUnit != "" {
			u, err := seeds.ByName(seedUnit)
			if err != nil {
				return err
			}
			units = []seeder.Unit{u}
		}

		runner := seeder.NewRunner(
			seeder.NewSQLStore(conn.DB, conn.Builder),
			logger.Named("seeder"),
			seeder.NewConsoleReporter(os.Stderr),
		)

		summary := runner.RunAll(ctx, units...)
		fmt.Printf("🌱 %d completed, %d skipped, %d failed\n", summary.Completed, summary.Skipped, summary.Failed)
		if summary.Failed > 0 {
			return fmt.Errorf("%d seeders failed", summary.Failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVarP(&seedUnit, "unit", "u", "", "Run a single seeder by name")
}
