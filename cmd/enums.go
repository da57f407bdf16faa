package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Rana718/groundwork/internal/enums"
)

var enumsFormat string

var enumsCmd = &cobra.Command{
	Use:   "enums [name]",
	Short: "Print enum values and their descriptions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var payload any = enums.Catalogs()
		if len(args) == 1 {
			c, err := enums.FindCatalog(args[0])
			if err != nil {
				return err
			}
			payload = c
		}

		switch enumsFormat {
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(payload)
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		default:
			return fmt.Errorf("unsupported format %q (use yaml or json)", enumsFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(enumsCmd)
	enumsCmd.Flags().StringVar(&enumsFormat, "format", "yaml", "Output format: yaml or json")
}
