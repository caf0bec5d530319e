package loc

import (
	"github.com/go-git/go-git/v5/plumbing"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yeisme/gitloc/pkg/utils/count"
)

// metricsCache 按 blob 哈希缓存统计结果，相同内容只读取一次
type metricsCache struct {
	lru    *lru.Cache[plumbing.Hash, count.Metrics]
	hits   int
	misses int
}

// newMetricsCache 创建缓存，size 为 0 时缓存关闭
func newMetricsCache(size int) (*metricsCache, error) {
	c := &metricsCache{}
	if size <= 0 {
		return c, nil
	}
	l, err := lru.New[plumbing.Hash, count.Metrics](size)
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

func (c *metricsCache) get(h plumbing.Hash) (count.Metrics, bool) {
	if c.lru == nil {
		c.misses++
		return count.Metrics{}, false
	}
	m, ok := c.lru.Get(h)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return m, ok
}

func (c *metricsCache) add(h plumbing.Hash, m count.Metrics) {
	if c.lru != nil {
		c.lru.Add(h, m)
	}
}
