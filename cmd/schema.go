package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/gitloc/pkg/utils/schema"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [" + strings.Join(schema.Names(), "|") + "]",
		Short:     "Print JSON schemas",
		Long:      `gitloc schema prints the JSON schema of the configuration file (default), a report category record, or a classification lookup table.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: schema.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "config"
			if len(args) == 1 {
				name = args[0]
			}
			if err := schema.Generate(name, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("generate %s schema: %w", name, err)
			}
			return nil
		},
	}
}
