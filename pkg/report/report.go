// Package report 把按分类聚合的统计渲染为表格、CSV、JSON、YAML 或 TOML
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/yeisme/gitloc/pkg/models"
	"github.com/yeisme/gitloc/pkg/style"
)

// TotalLabel 表格汇总行的名称
const TotalLabel = "TOTAL"

// Columns 表格与 CSV 的列
var Columns = []string{"category", "files", "lines", "blanks", "bytes"}

// Options 渲染选项
type Options struct {
	Format Format
	// Color 为 true 时对 JSON / YAML / TOML 输出做语法高亮
	Color bool
	// Width 为表格宽度，0 表示自动
	Width int
}

// Render 按 opts.Format 把 report 写入 w
// 结构化格式只输出分类映射，不包含汇总
func Render(w io.Writer, report *models.Report, opts Options) error {
	categories := report.Categories
	if categories == nil {
		categories = map[string]models.CountRecord{}
	}

	switch opts.Format {
	case FormatTable, "":
		return renderTable(w, categories, report.Total, opts.Width)
	case FormatCSV:
		return renderCSV(w, categories)
	case FormatJSON:
		return renderText(w, categories, style.FormatJSON, style.SyntaxJSON, opts.Color)
	case FormatYAML:
		return renderText(w, categories, style.FormatYAML, style.SyntaxYAML, opts.Color)
	case FormatTOML:
		return renderText(w, categories, style.FormatTOML, style.SyntaxTOML, opts.Color)
	}
	return &UnsupportedFormatError{Value: string(opts.Format)}
}

// SortedCategories 返回按字典序排序的分类名
func SortedCategories(categories map[string]models.CountRecord) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func recordRow(name string, r models.CountRecord) []string {
	return []string{
		name,
		strconv.Itoa(r.Files),
		strconv.Itoa(r.Lines),
		strconv.Itoa(r.Blanks),
		strconv.FormatInt(r.Bytes, 10),
	}
}

func renderTable(w io.Writer, categories map[string]models.CountRecord, total models.CountRecord, width int) error {
	rows := make([][]string, 0, len(categories))
	for _, name := range SortedCategories(categories) {
		rows = append(rows, recordRow(name, categories[name]))
	}
	return style.PrintTable(w, style.Table{
		Headers:    Columns,
		Rows:       rows,
		Footer:     recordRow(TotalLabel, total),
		RightAlign: map[int]bool{1: true, 2: true, 3: true, 4: true},
		Width:      width,
	})
}

func renderCSV(w io.Writer, categories map[string]models.CountRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, name := range SortedCategories(categories) {
		if err := cw.Write(recordRow(name, categories[name])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderText(w io.Writer, v any, format func(any) (string, error), syntax style.Syntax, color bool) error {
	s, err := format(v)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if color {
		s = style.Highlight(s, syntax)
	}
	_, err = io.WriteString(w, s)
	return err
}
