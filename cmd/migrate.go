package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/groundwork/internal/utils"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations",
	Long: `
Apply every migration under migrations_path that has not been applied yet.
Each migration runs in its own transaction together with its bookkeeping
row in _groundwork_migrations.`,
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

		n, err := newMigrator(cfg, conn).Apply(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Applied %d migration(s)\n", n)
		return nil
	},
}

var migrateNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new migration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path, err := newMigrator(cfg, nil).Create(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✨ Created %s\n", path)
		return nil
	},
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Roll back applied migrations",
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

		steps, _ := cmd.Flags().GetInt("steps")
		n, err := newMigrator(cfg, conn).Rollback(ctx, steps)
		if err != nil {
			return err
		}
		fmt.Printf("↩️  Rolled back %d migration(s)\n", n)
		return nil
	},
}

var migrateRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Roll back every migration and apply them again",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		input := &utils.InputUtils{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
		if !input.AskConfirmation("🗑️  This drops all data managed by migrations. Continue?", force) {
			fmt.Println("Refresh cancelled")
			return nil
		}

		ctx := cmd.Context()
		conn, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		return newMigrator(cfg, conn).Refresh(ctx)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
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

		items, err := newMigrator(cfg, conn).Status(ctx)
		if err != nil {
			return err
		}

		applied := 0
		for _, item := range items {
			if item.Applied {
				applied++
			}
		}

		fmt.Printf("📊 Migration Status\n")
		fmt.Printf("==================\n\n")
		fmt.Printf("Total migrations: %d\n", len(items))
		fmt.Printf("Applied: %d\n", applied)
		fmt.Printf("Pending: %d\n\n", len(items)-applied)

		if len(items) == 0 {
			fmt.Println("No migrations found")
			return nil
		}

		for _, item := range items {
			status := color.YellowString("Pending")
			timestamp := ""
			if item.Applied {
				status = color.GreenString("Applied")
				timestamp = fmt.Sprintf(" (applied: %s)", item.AppliedAt.Format("2006-01-02 15:04:05"))
			}
			if item.Modified {
				status += color.RedString(" [modified]")
			}
			fmt.Printf("%-50s %s%s\n", item.ID, status, timestamp)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateNewCmd, migrateRollbackCmd, migrateRefreshCmd, migrateStatusCmd)
	migrateRollbackCmd.Flags().IntP("steps", "s", 1, "Number of migrations to roll back (0 for all)")
}
