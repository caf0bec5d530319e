// Package count 提供行数、空白行与字节数的统计以及按分类的聚合
package count

import (
	"bytes"
	"strings"

	"github.com/yeisme/gitloc/pkg/classify"
)

// Metrics 是单个文件的统计结果
type Metrics struct {
	Lines  int   // 总行数
	Blanks int   // 空白行数
	Bytes  int64 // 原始字节数
	Binary bool  // 内容为二进制时行数与空白行均为 0
}

// CountBytes 统计一段内容
//
// 以 `\n` 结尾的每一行计为一行，末尾没有换行符的片段同样计为一行；
// `\r\n` 中的 `\r` 视为该行的空白。二进制内容只统计字节数
func CountBytes(content []byte) Metrics {
	m := Metrics{Bytes: int64(len(content))}
	if classify.IsBinary(content) {
		m.Binary = true
		return m
	}

	rest := content
	for len(rest) > 0 {
		var line []byte
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			line, rest = rest, nil
		}
		m.Lines++
		if isBlank(string(line)) {
			m.Blanks++
		}
	}
	return m
}

// isBlank 判断一行在去掉换行符后是否只包含空白
func isBlank(s string) bool {
	for _, r := range s {
		if !isSpace(r) {
			return false
		}
	}
	return true
}

func isSpace(r rune) bool {
	// 与 unicode.IsSpace 类似，显式处理常见空白
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		// 兜底：处理其它 unicode 空白
		return strings.ContainsRune("\u0085\u00a0\u1680\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a\u2028\u2029\u202f\u205f\u3000", r)
	}
}
