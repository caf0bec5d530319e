package repo

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// WalkOptions 控制遍历范围，零值表示遍历全部文件
type WalkOptions struct {
	Include []string // 仅保留匹配这些 glob 的路径（优先级高于 Exclude）
	Exclude []string // 排除匹配这些 glob 的路径
}

type pathFilter struct {
	include []string
	exclude []string
}

func newPathFilter(opts WalkOptions) pathFilter {
	return pathFilter{
		include: normalizePatterns(opts.Include),
		exclude: normalizePatterns(opts.Exclude),
	}
}

// match 判断仓库内路径是否应被统计
//  1. Include 非空时，只有匹配 Include 的路径被保留
//  2. 否则匹配 Exclude 的路径被排除
func (f pathFilter) match(path string) bool {
	if len(f.include) > 0 {
		return matchesAny(path, f.include)
	}
	return !matchesAny(path, f.exclude)
}

func matchesAny(path string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
		// `vendor`、`vendor/` 这类不带通配符的模式视为目录前缀
		if !strings.ContainsAny(p, "*?[{") {
			prefix := strings.TrimSuffix(p, "/")
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
		}
	}
	return false
}

// Validate 检查 Include 与 Exclude 中的 glob 是否合法
func (o WalkOptions) Validate() error {
	for _, group := range [][]string{o.Include, o.Exclude} {
		for _, r := range group {
			if p := normalizePattern(r); p != "" && !doublestar.ValidatePattern(p) {
				return fmt.Errorf("invalid path pattern %q: %w", r, doublestar.ErrBadPattern)
			}
		}
	}
	return nil
}

// normalizePatterns 统一为使用 `/` 的形式并去掉前导 `./`
// 非法模式保留下来，匹配时永远不命中；调用方应先用 Validate 拒绝它们
func normalizePatterns(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if p := normalizePattern(r); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizePattern(raw string) string {
	p := strings.TrimSpace(raw)
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(p, "./")
}
