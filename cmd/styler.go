package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rana718/groundwork/internal/styler"
)

var stylerOpts styler.Options

var stylerCmd = &cobra.Command{
	Use:   "styler",
	Short: "Format the source tree",
	Long: `
Run the configured formatter over the project, optionally run code
generators and stage the result with git.

Examples:
  groundwork styler              # format in place
  groundwork styler --test       # only list files that need formatting
  groundwork styler -g -a        # format, generate, then git add`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s := styler.New(cfg.Styler, styler.ShellExecutor{}, os.Stdout, logger.Named("styler"))
		if code := s.Run(cmd.Context(), stylerOpts); code != 0 {
			return fmt.Errorf("formatter exited with code %d", code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylerCmd)
	stylerCmd.Flags().BoolVarP(&stylerOpts.Test, "test", "t", false, "Check formatting without changing files")
	stylerCmd.Flags().BoolVarP(&stylerOpts.Generate, "generate", "g", false, "Run code generators after formatting")
	stylerCmd.Flags().BoolVarP(&stylerOpts.Add, "add", "a", false, "Stage changes with git add")
}
