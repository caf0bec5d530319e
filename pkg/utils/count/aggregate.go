package count

import (
	"sync"

	"github.com/yeisme/gitloc/pkg/classify"
	"github.com/yeisme/gitloc/pkg/models"
)

// Aggregator 按分类累加文件统计，可并发调用
type Aggregator struct {
	mu      sync.Mutex
	records map[string]*models.CountRecord
}

// NewAggregator 创建空的聚合器
func NewAggregator() *Aggregator {
	return &Aggregator{records: make(map[string]*models.CountRecord)}
}

// Add 把一个文件的统计计入 category，文件数加一
func (a *Aggregator) Add(category string, m Metrics) {
	// 分类为空时归为 "Unknown"
	if category == "" {
		category = classify.Unknown
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	rec, ok := a.records[category]
	if !ok {
		rec = &models.CountRecord{}
		a.records[category] = rec
	}
	rec.Add(models.CountRecord{
		Files:  1,
		Lines:  m.Lines,
		Blanks: m.Blanks,
		Bytes:  m.Bytes,
	})
}

// Result 返回当前聚合结果的快照
func (a *Aggregator) Result() map[string]models.CountRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]models.CountRecord, len(a.records))
	for k, v := range a.records {
		out[k] = *v
	}
	return out
}

// Total 返回所有分类之和
func (a *Aggregator) Total() models.CountRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	var total models.CountRecord
	for _, v := range a.records {
		total.Add(*v)
	}
	return total
}
