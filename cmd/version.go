package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/gitloc/pkg/utils/version"
)

func newVersionCmd() *cobra.Command {
	var (
		versionDetailed bool
		versionJSON     bool
	)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `
Display version information for gitloc.

Examples:
  # Show short version info (default)
  gitloc version

  # Show detailed version info
  gitloc version --detailed

  # Show version info in JSON format
  gitloc version --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			switch {
			case versionJSON:
				output, err := json.MarshalIndent(version.GetVersion(), "", "  ")
				if err != nil {
					return fmt.Errorf("format version: %w", err)
				}
				_, err = fmt.Fprintln(out, string(output))
				return err
			case versionDetailed:
				_, err := fmt.Fprintln(out, version.GetVersionString())
				return err
			default:
				_, err := fmt.Fprintln(out, version.GetShortVersionString())
				return err
			}
		},
	}

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
	return versionCmd
}
