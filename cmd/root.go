// Package cmd provides the command-line interface for gitloc
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/gitloc/pkg/context"
	"github.com/yeisme/gitloc/pkg/utils/version"
)

// app 保存一次命令执行的状态
type app struct {
	flags context.GlobalFlags
	count countFlags
	ctx   *context.GitlocContext
}

// NewRootCmd 创建根命令；根命令即统计命令
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gitloc [working_dir]",
		Short: "Count lines, blanks, files and bytes in a git tree",
		Long: `gitloc reads a revision of a git repository straight from the object store,
without checking files out, and reports files, lines, blank lines and bytes
grouped by language, mime group or file extension.

Examples:
  gitloc                                # HEAD of the repository in the current directory
  gitloc ../project --rev v1.2.0        # a tag of another repository
  gitloc -r HEAD~3 -g mime -f json      # group by mime, output JSON
  gitloc -g extension -f csv -o totals.csv
  gitloc -e vendor -e "**/*.pb.go"      # skip generated and vendored files`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := context.InitGitlocContext(cmd.Context(), a.flags)
			if err != nil {
				return err
			}
			a.ctx = ctx
			ctx.Logger.Debug().Msgf("Execute Command: %s %s", "gitloc", strings.Join(os.Args[1:], " "))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.VersionEnable {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
				return err
			}
			return a.runCount(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.flags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&a.flags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&a.flags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.Flags().BoolVarP(&a.flags.VersionEnable, "version", "v", false, "show version information")
	a.count.register(rootCmd)

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(a),
		newSchemaCmd(),
	)
	return rootCmd
}

// Execute 执行根命令并返回进程退出码
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return ExitCode(err)
	}
	return ExitOK
}
