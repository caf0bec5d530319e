package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/gitloc/pkg/classify"
	"github.com/yeisme/gitloc/pkg/configs"
	"github.com/yeisme/gitloc/pkg/loc"
	"github.com/yeisme/gitloc/pkg/report"
)

// countFlags 统计相关的命令行标志；未显式设置的标志取配置文件中的值
type countFlags struct {
	revision  string
	groupBy   string
	format    string
	table     string
	include   []string
	exclude   []string
	output    string
	color     bool
	cacheSize int
}

func (f *countFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.revision, "rev", "r", "HEAD", "revision to count (branch, tag, commit or expression like HEAD~2)")
	fs.StringVarP(&f.groupBy, "groupby", "g", "language", fmt.Sprintf("grouping scheme (%s)", strings.Join(classify.ValidSchemes(), ", ")))
	fs.StringVarP(&f.format, "format", "f", "table", fmt.Sprintf("output format (%s)", strings.Join(report.ValidFormats(), ", ")))
	fs.StringVar(&f.table, "table", "", "classification lookup table file (YAML)")
	fs.StringArrayVarP(&f.include, "include", "i", nil, "only count paths matching the glob (repeatable, wins over --exclude)")
	fs.StringArrayVarP(&f.exclude, "exclude", "e", nil, "skip paths matching the glob (repeatable)")
	fs.StringVarP(&f.output, "output", "o", "", "write the report to a file instead of stdout")
	fs.BoolVar(&f.color, "color", false, "highlight json/yaml/toml output on a terminal")
	fs.IntVar(&f.cacheSize, "cache-size", loc.DefaultCacheSize, "number of blob results kept in memory, 0 disables the cache")
}

// options 合并命令行标志与配置，命令行优先
func (f *countFlags) options(cmd *cobra.Command, cfg configs.CountConfig) loc.Options {
	changed := cmd.Flags().Changed
	opts := loc.Options{
		Revision:  f.revision,
		Output:    f.output,
		GroupBy:   pick(changed("groupby"), f.groupBy, cfg.GroupBy),
		Format:    pick(changed("format"), f.format, cfg.Format),
		Table:     pick(changed("table"), f.table, cfg.Table),
		Include:   pick(changed("include"), f.include, cfg.Include),
		Exclude:   pick(changed("exclude"), f.exclude, cfg.Exclude),
		Color:     pick(changed("color"), f.color, cfg.Color),
		CacheSize: pick(changed("cache-size"), f.cacheSize, cfg.CacheSize),
	}
	return opts
}

func pick[T any](useFlag bool, flag, config T) T {
	if useFlag {
		return flag
	}
	return config
}

func (a *app) runCount(cmd *cobra.Command, args []string) error {
	opts := a.count.options(cmd, a.ctx.Config.Count)
	if len(args) == 1 {
		opts.WorkingDir = args[0]
	}
	// 选项错误在遍历之前报告
	if err := opts.Validate(); err != nil {
		return err
	}

	a.ctx.Logger.Debug().Str("dir", opts.WorkingDir).Str("rev", opts.Revision).
		Str("groupby", opts.GroupBy).Str("format", opts.Format).Msg("counting")
	return loc.Execute(a.ctx, opts, cmd.OutOrStdout())
}
