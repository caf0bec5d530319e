package configs

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/yeisme/gitloc/pkg/style"
)

// OutputFormat 输出格式类型
type OutputFormat string

const (
	// FormatYAML represents the YAML output format.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON represents the JSON output format.
	FormatJSON OutputFormat = "json"
	// FormatTOML represents the TOML output format.
	FormatTOML OutputFormat = "toml"
)

// ValidFormats 返回所有有效的输出格式
func ValidFormats() []string {
	return []string{string(FormatYAML), string(FormatJSON), string(FormatTOML)}
}

// ParseOutputFormat 解析输出格式字符串，空字符串为 yaml
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', supported formats: %s", format, strings.Join(ValidFormats(), ", "))
	}
}

// OutputData 根据指定格式输出数据，color 为 true 时高亮
func OutputData(data any, format OutputFormat, out io.Writer, color bool) error {
	var (
		text   string
		syntax style.Syntax
		err    error
	)
	switch format {
	case FormatYAML:
		text, err = style.FormatYAML(data)
		syntax = style.SyntaxYAML
	case FormatJSON:
		text, err = style.FormatJSON(data)
		syntax = style.SyntaxJSON
	case FormatTOML:
		text, err = style.FormatTOML(data)
		syntax = style.SyntaxTOML
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal to %s: %w", strings.ToUpper(string(format)), err)
	}

	if color {
		text = style.Highlight(text, syntax)
	}
	_, err = io.WriteString(out, text)
	return err
}

// GetConfigSection 从 viper 实例获取指定配置段
// showAll 为 true 时返回解析后的结构体（包含默认值），否则返回 viper 的原始数据
func GetConfigSection(v *viper.Viper, section string, showAll bool) (any, error) {
	lowerSection := strings.ToLower(section)

	if showAll {
		var config Config
		if err := v.Unmarshal(&config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}

		if section == "" {
			return config, nil
		}

		// 使用反射按 mapstructure 标签查找配置段
		val := reflect.ValueOf(config)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			if strings.ToLower(typ.Field(i).Tag.Get("mapstructure")) == lowerSection {
				return val.Field(i).Interface(), nil
			}
		}
		return nil, fmt.Errorf("unknown configuration section: %s", section)
	}

	if lowerSection == "" {
		return v.AllSettings(), nil
	}
	if v.IsSet(lowerSection) {
		return v.Get(lowerSection), nil
	}
	return nil, fmt.Errorf("unknown or unset configuration section %s", section)
}
