package classify

import (
	"bytes"
	"unicode/utf8"
)

// IsBinary 判断内容是否为二进制：包含 NUL 字节或不是合法的 UTF-8
func IsBinary(content []byte) bool {
	if bytes.IndexByte(content, 0) >= 0 {
		return true
	}
	return !utf8.Valid(content)
}
