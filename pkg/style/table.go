package style

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xterm "github.com/charmbracelet/x/term"
)

// Table 描述一张待渲染的表格
type Table struct {
	Headers []string
	Rows    [][]string
	// Footer 为空时不渲染汇总行
	Footer []string
	// RightAlign 中的列按右对齐渲染（通常是数字列）
	RightAlign map[int]bool
	// Width 为 0 时自动探测终端宽度
	Width int
}

// PrintTable 用于标准化表格输出，表头统一大写，汇总行位于最后并加粗
func PrintTable(w io.Writer, t Table) error {
	re := lipgloss.NewRenderer(w)
	baseStyle := re.NewStyle().Padding(0, 1)
	headerStyle := baseStyle.Foreground(ColorHeader).Bold(true)
	totalStyle := baseStyle.Foreground(ColorTotal).Bold(true)

	headers := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = strings.ToUpper(h)
	}

	rows := t.Rows
	if len(t.Footer) > 0 {
		rows = append(rows[:len(rows):len(rows)], t.Footer)
	}
	footerRow := -1
	if len(t.Footer) > 0 {
		footerRow = len(rows) - 1
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(ColorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch row {
			case table.HeaderRow:
				s = headerStyle
			case footerRow:
				s = totalStyle
			default:
				s = baseStyle
			}
			if t.RightAlign[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	if width := tableWidth(w, t.Width); width > 0 {
		tbl = tbl.Width(width)
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}

// tableWidth 返回表格宽度：显式指定优先；终端下为终端宽度；否则为 0（按内容自适应）
func tableWidth(w io.Writer, width int) int {
	if width > 0 {
		return width
	}
	return detectTerminalWidth(w)
}

// detectTerminalWidth 尝试从 writer 获取终端宽度，失败则返回 0
func detectTerminalWidth(w io.Writer) int {
	// 优先使用文件描述符
	if f, ok := w.(*os.File); ok {
		if cols, _, err := xterm.GetSize(f.Fd()); err == nil && cols > 0 {
			return cols
		}
	}
	// 尝试从环境变量读取（例如某些环境会设置 COLUMNS）
	if v := os.Getenv("COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
