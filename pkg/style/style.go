// Package style 提供表格与结构化文本的样式化输出
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	xterm "github.com/charmbracelet/x/term"
)

// 定义一套颜色，方便管理和修改
const (
	// 主要文本颜色
	ColorText = lipgloss.Color("#E4E4E4")

	// 表头文本颜色
	ColorHeader = lipgloss.Color("252")

	// 边框颜色，用于表格的轮廓
	ColorBorder = lipgloss.Color("238")

	// 汇总行颜色
	ColorTotal = lipgloss.Color("#33A1FF")

	// 结构化文本高亮颜色
	ColorKey    = lipgloss.Color("#55bcf4ff") // 键名
	ColorString = lipgloss.Color("#FFFFFF")   // 字符串值
	ColorNumber = lipgloss.Color("#d4ec19ff") // 数字
	ColorBool   = lipgloss.Color("#dfab49ff") // 布尔
	ColorNull   = lipgloss.Color("#6272A4")   // null
	ColorPunct  = lipgloss.Color("#6B7280")   // 标点与注释
)

// IsTerminal 判断 writer 是否为终端
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(f.Fd())
}
