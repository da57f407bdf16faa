package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rana718/groundwork/internal/project"
	"github.com/Rana718/groundwork/internal/seeder"
	"github.com/Rana718/groundwork/internal/seeds"
	"github.com/Rana718/groundwork/internal/styler"
	"github.com/Rana718/groundwork/internal/utils"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the project",
	Long: `
Bootstrap a working copy:
- generate the application key into the env file
- roll back and re-apply every migration
- run the seeders
- run the code styler (local environment only)

In production you are asked to confirm first unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}

		ctx := cmd.Context()
		conn, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		force, _ := cmd.Flags().GetBool("force")

		initializer := &project.Initializer{
			Env:      cfg.Environment(),
			EnvFile:  cfg.EnvFile,
			KeyEnv:   cfg.App.KeyEnv,
			Force:    force,
			Migrator: newMigrator(cfg, conn),
			Seeder: seeder.NewRunner(
				seeder.NewSQLStore(conn.DB, conn.Builder),
				logger.Named("seeder"),
				seeder.NewConsoleReporter(os.Stderr),
			),
			Units:  seeds.All(),
			Styler: styler.New(cfg.Styler, styler.ShellExecutor{}, os.Stdout, logger.Named("styler")),
			Input:  &utils.InputUtils{In: os.Stdin, Out: os.Stdout},
			Out:    os.Stdout,
			Logger: logger,
		}

		results, err := initializer.Run(ctx)
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			fmt.Printf("⚠️  Project initialized with %d failed step(s)\n", failed)
			return nil
		}
		fmt.Println("🎉 Project initialized")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
