package loc

import (
	"fmt"

	"github.com/yeisme/gitloc/pkg/classify"
	"github.com/yeisme/gitloc/pkg/repo"
	"github.com/yeisme/gitloc/pkg/report"
)

// DefaultCacheSize 默认缓存的 blob 统计条目数
const DefaultCacheSize = 4096

// Options 控制一次统计
type Options struct {
	WorkingDir string   // 仓库所在目录，为空时为当前目录
	Revision   string   // 修订，为空时为 HEAD
	GroupBy    string   // language | mime | extension
	Format     string   // table | csv | json | yaml | toml
	Table      string   // 自定义分类查找表路径
	Include    []string // 仅统计匹配这些 glob 的路径（优先级高于 Exclude）
	Exclude    []string // 排除匹配这些 glob 的路径
	Output     string   // 报告写入的文件，为空时写入 writer
	Color      bool     // 输出到终端时高亮结构化格式
	CacheSize  int      // 按 blob 哈希缓存统计结果的条目数，0 表示关闭
}

// Validate 在遍历之前检查分组方式、输出格式与路径过滤模式
func (o Options) Validate() error {
	if _, err := classify.ParseScheme(o.GroupBy); err != nil {
		return err
	}
	if _, err := report.ParseFormat(o.Format); err != nil {
		return err
	}
	if err := o.walkOptions().Validate(); err != nil {
		return err
	}
	if o.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative: %d", o.CacheSize)
	}
	return nil
}

func (o Options) scheme() classify.Scheme {
	s, _ := classify.ParseScheme(o.GroupBy)
	return s
}

func (o Options) walkOptions() repo.WalkOptions {
	return repo.WalkOptions{Include: o.Include, Exclude: o.Exclude}
}
