// Package suggest 为无效的命令行取值给出最接近的候选
package suggest

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Closest 返回与 value 最接近的候选，没有可信的候选时返回空串
//
// 先把 value 当作候选的模糊子序列（`jsn` -> `json`），
// 再反过来匹配多打了字符的情况（`yamll` -> `yaml`）
func Closest(value string, candidates []string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	ranks := fuzzy.RankFindFold(value, candidates)
	if len(ranks) == 0 {
		for _, c := range candidates {
			if fuzzy.MatchFold(c, value) {
				ranks = append(ranks, fuzzy.Rank{
					Source:   c,
					Target:   c,
					Distance: fuzzy.LevenshteinDistance(strings.ToLower(value), c),
				})
			}
		}
	}
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	return ranks[0].Target
}

// Hint 返回形如 `; did you mean "json"?` 的提示，没有候选时返回空串
func Hint(value string, candidates []string) string {
	if c := Closest(value, candidates); c != "" {
		return `; did you mean "` + c + `"?`
	}
	return ""
}
