package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/gitloc/pkg/configs"
	"github.com/yeisme/gitloc/pkg/style"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect gitloc configuration",
		Long: `gitloc config shows and checks the configuration gitloc runs with.

Configuration is read from .gitloc.{yaml,yml,json,toml} or gitloc.{yaml,yml,json,toml}
in ., ./configs, $HOME, $HOME/.config, $HOME/.config/gitloc and /etc/gitloc,
or from the file given with --config. Environment variables prefixed with
GITLOC_ override file values, e.g. GITLOC_COUNT_FORMAT=json.`,
	}

	var (
		format  string
		showAll bool
		noColor bool
	)
	configListCmd := &cobra.Command{
		Use:   "list [section]",
		Short: "List gitloc configuration",
		Long: `gitloc config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - count: Default counting options

Examples:
  gitloc config list                    # Show all configuration (viper raw data)
  gitloc config list --all              # Show all configuration with defaults
  gitloc config list count              # Show only count settings
  gitloc config list count --all -f json`,
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			outFormat, err := configs.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			data, err := configs.GetConfigSection(a.ctx.Viper, section, showAll)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return configs.OutputData(data, outFormat, out, !noColor && style.IsTerminal(out))
		},
	}
	configListCmd.Flags().StringVarP(&format, "format", "f", "yaml", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show complete configuration with defaults (processed struct)")
	configListCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	configValidateCmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validate gitloc configuration",
		Long:    `gitloc config validate checks that the loaded configuration holds usable counting defaults.`,
		Args:    cobra.NoArgs,
		Aliases: []string{"check", "verify"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cf countFlags
			opts := cf.options(cmd, a.ctx.Config.Count)
			if err := opts.Validate(); err != nil {
				return err
			}

			fileUsed := a.ctx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fileUsed = "(defaults)"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "configuration ok: %s\n", fileUsed)
			return err
		},
	}

	configCmd.AddCommand(configListCmd, configValidateCmd)
	return configCmd
}
