// Package loc 串联仓库解析、遍历、分类、统计与报告输出
package loc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/yeisme/gitloc/pkg/classify"
	"github.com/yeisme/gitloc/pkg/models"
	"github.com/yeisme/gitloc/pkg/repo"
	"github.com/yeisme/gitloc/pkg/report"
	"github.com/yeisme/gitloc/pkg/style"
	"github.com/yeisme/gitloc/pkg/utils/count"
)

// Count 打开 opts.WorkingDir 处的仓库并统计
func Count(ctx context.Context, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	dir := opts.WorkingDir
	if dir == "" {
		dir = "."
	}
	r, err := repo.Open(dir)
	if err != nil {
		return nil, err
	}
	return CountRepository(ctx, r, opts)
}

// CountRepository 统计已打开仓库中 opts.Revision 对应的树
//
// 每个 blob 恰好计入一个分类，各分类文件数之和等于遍历到的 blob 数
func CountRepository(ctx context.Context, r *repo.Repository, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := zerolog.Ctx(ctx)

	table, err := classify.LoadTable(opts.Table)
	if err != nil {
		return nil, err
	}
	cls, err := classify.New(opts.scheme(), table)
	if err != nil {
		return nil, err
	}
	cache, err := newMetricsCache(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create metrics cache: %w", err)
	}

	tree, err := r.ResolveTree(opts.Revision)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("dir", r.Dir()).Str("revision", tree.Revision()).Str("commit", tree.Commit()).
		Str("groupby", string(cls.Scheme())).Msg("resolved tree")

	agg := count.NewAggregator()
	walker := tree.Walk(opts.walkOptions())
	err = walker.ForEach(func(b *repo.Blob) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		m, content, err := measure(b, cls, cache)
		if err != nil {
			return err
		}
		category := cls.Classify(b.Path, content, m.Binary)
		agg.Add(category, m)
		logger.Trace().Str("path", b.Path).Str("category", category).
			Int("lines", m.Lines).Int("blanks", m.Blanks).Int64("bytes", m.Bytes).Msg("counted")
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := agg.Total()
	logger.Debug().Int("files", total.Files).Int("skipped", walker.Skipped()).
		Int("cache_hits", cache.hits).Int("cache_misses", cache.misses).Msg("walk finished")

	return &models.Report{
		Revision:   tree.Revision(),
		Commit:     tree.Commit(),
		GroupBy:    string(cls.Scheme()),
		Categories: agg.Result(),
		Total:      total,
	}, nil
}

// measure 返回 blob 的统计结果；只有缓存未命中或分类需要内容时才读取内容
func measure(b *repo.Blob, cls *classify.Classifier, cache *metricsCache) (count.Metrics, []byte, error) {
	m, cached := cache.get(b.Hash)
	if cached && !cls.NeedsContent(b.Path) {
		return m, nil, nil
	}
	content, err := b.Bytes()
	if err != nil {
		return count.Metrics{}, nil, err
	}
	if !cached {
		m = count.CountBytes(content)
		cache.add(b.Hash, m)
	}
	return m, content, nil
}

// Execute 统计并渲染报告；opts.Output 非空时写入该文件，否则写入 w
// 统计失败时不会写出任何报告
func Execute(ctx context.Context, opts Options, w io.Writer) error {
	rep, err := Count(ctx, opts)
	if err != nil {
		return err
	}
	return Write(ctx, rep, opts, w)
}

// Write 按 opts 渲染已有的报告
// 写入文件时先完整渲染到内存，渲染失败不会创建或覆盖文件
func Write(ctx context.Context, rep *models.Report, opts Options, w io.Writer) error {
	format, err := report.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	ropts := report.Options{Format: format}

	if opts.Output == "" {
		ropts.Color = opts.Color && style.IsTerminal(w)
		return report.Render(w, rep, ropts)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, rep, ropts); err != nil {
		return err
	}
	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	zerolog.Ctx(ctx).Info().Str("file", opts.Output).Msg("report written")
	return nil
}
