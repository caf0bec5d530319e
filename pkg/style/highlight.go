package style

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Syntax 结构化文本的语法
type Syntax int

const (
	SyntaxJSON Syntax = iota
	SyntaxYAML
	SyntaxTOML
)

type palette struct {
	key, str, num, boolean, null, punct lipgloss.Style
}

func newPalette() palette {
	return palette{
		key:     lipgloss.NewStyle().Foreground(ColorKey).Bold(true),
		str:     lipgloss.NewStyle().Foreground(ColorString),
		num:     lipgloss.NewStyle().Foreground(ColorNumber),
		boolean: lipgloss.NewStyle().Foreground(ColorBool),
		null:    lipgloss.NewStyle().Foreground(ColorNull),
		punct:   lipgloss.NewStyle().Foreground(ColorPunct),
	}
}

// Highlight 对已格式化的 JSON / YAML / TOML 文本逐行做轻量高亮
// 只给 token 着色，缩进与空白保持原样
func Highlight(s string, syntax Syntax) string {
	p := newPalette()
	sep := byte(':')
	if syntax == SyntaxTOML {
		sep = '='
	}

	lines := strings.Split(s, "\n")
	var out strings.Builder
	for i, line := range lines {
		if i > 0 {
			out.WriteByte('\n')
		}
		highlightLine(&out, line, sep, syntax, p)
	}
	return out.String()
}

func highlightLine(out *strings.Builder, line string, sep byte, syntax Syntax, p palette) {
	body := strings.TrimLeft(line, " \t")
	out.WriteString(line[:len(line)-len(body)])
	if body == "" {
		return
	}

	switch {
	case strings.HasPrefix(body, "#") && syntax != SyntaxJSON:
		out.WriteString(p.punct.Render(body))
		return
	case strings.HasPrefix(body, "[") && syntax == SyntaxTOML:
		// 表头 [table] 或 [[array]]
		out.WriteString(p.punct.Render(body))
		return
	case syntax == SyntaxYAML && (body == "-" || strings.HasPrefix(body, "- ")):
		out.WriteString(p.punct.Render("-"))
		body = body[1:]
		if body == "" {
			return
		}
		out.WriteByte(' ')
		body = body[1:]
	}

	if idx := indexUnquoted(body, sep); idx > 0 {
		key := body[:idx]
		trimmedKey := strings.TrimRight(key, " ")
		out.WriteString(p.key.Render(trimmedKey))
		out.WriteString(key[len(trimmedKey):])
		out.WriteString(p.punct.Render(string(sep)))
		body = body[idx+1:]
	}
	tokenize(out, body, p)
}

// tokenize 给值部分着色：字符串、数字、布尔、null 与标点
func tokenize(out *strings.Builder, s string, p palette) {
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == '"' || ch == '\'':
			j := readQuoted(s, i)
			out.WriteString(p.str.Render(s[i:j]))
			i = j
		case strings.IndexByte("{}[],", ch) >= 0:
			out.WriteString(p.punct.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			j := readNumber(s, i)
			if j == i {
				j++
			}
			out.WriteString(p.num.Render(s[i:j]))
			i = j
		case hasWordAt(s, i, "true"), hasWordAt(s, i, "false"):
			j := i + 4
			if ch == 'f' {
				j++
			}
			out.WriteString(p.boolean.Render(s[i:j]))
			i = j
		case hasWordAt(s, i, "null"):
			out.WriteString(p.null.Render("null"))
			i += 4
		default:
			out.WriteByte(ch)
			i++
		}
	}
}

// indexUnquoted 在行中找到第一个不在引号中的目标字符位置，找不到返回 -1
func indexUnquoted(line string, target byte) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"', '\'':
			i = readQuoted(line, i) - 1
		case target:
			return i
		}
	}
	return -1
}

// readQuoted 返回从 i 处引号开始的字符串 token 的结束位置（半开区间）
func readQuoted(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch {
		case q == '"' && s[j] == '\\':
			j++
		case s[j] == q:
			// 单引号字符串中 '' 表示转义
			if q == '\'' && j+1 < len(s) && s[j+1] == '\'' {
				j++
				continue
			}
			return j + 1
		}
	}
	return len(s)
}

// readNumber 返回从 i 开始的数字 token 的结束位置（半开区间）
func readNumber(s string, i int) int {
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	digits := func() {
		for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '_') {
			j++
		}
	}
	digits()
	if j < len(s) && s[j] == '.' {
		j++
		digits()
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		j++
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		digits()
	}
	return j
}

// hasWordAt 判断 s 在 i 处是否为完整的单词 word
func hasWordAt(s string, i int, word string) bool {
	if !strings.HasPrefix(s[i:], word) {
		return false
	}
	isWord := func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }
	if i > 0 && isWord(rune(s[i-1])) {
		return false
	}
	if end := i + len(word); end < len(s) && isWord(rune(s[end])) {
		return false
	}
	return true
}
