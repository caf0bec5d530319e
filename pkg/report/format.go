package report

import (
	"fmt"
	"strings"

	"github.com/yeisme/gitloc/pkg/utils/suggest"
)

// Format 报告输出格式
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// ValidFormats 返回支持的输出格式
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatCSV), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// UnsupportedFormatError 表示不支持的输出格式
type UnsupportedFormatError struct {
	Value string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (valid: %s)%s",
		e.Value, strings.Join(ValidFormats(), ", "), suggest.Hint(e.Value, ValidFormats()))
}

// ParseFormat 解析输出格式，空字符串为 table，yml 视为 yaml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", &UnsupportedFormatError{Value: s}
}
