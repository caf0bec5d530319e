// Package classify 根据路径与内容把文件归入分类
package classify

import (
	"path"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Scheme 分组方式
type Scheme string

const (
	// SchemeLanguage 按编程语言分组
	SchemeLanguage Scheme = "language"
	// SchemeMime 按 mime 分组
	SchemeMime Scheme = "mime"
	// SchemeExtension 按扩展名分组
	SchemeExtension Scheme = "extension"
)

const (
	// Unknown 无法识别的分类
	Unknown = "Unknown"
	// Binary language 分组下所有二进制文件的分类
	Binary = "Binary"
	// OtherExtension extension 分组下无扩展名文件的分类
	OtherExtension = "other"
)

// ValidSchemes 返回支持的分组方式
func ValidSchemes() []string {
	return []string{string(SchemeLanguage), string(SchemeMime), string(SchemeExtension)}
}

// ParseScheme 解析分组方式，空字符串为 language
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemeLanguage:
		return SchemeLanguage, nil
	case SchemeMime:
		return SchemeMime, nil
	case SchemeExtension:
		return SchemeExtension, nil
	}
	return "", &UnsupportedGroupByError{Value: s}
}

// Classifier 按分组方式给文件分类
type Classifier struct {
	scheme Scheme
	table  *Table
}

// New 创建分类器，table 为 nil 时使用内置表
func New(scheme Scheme, table *Table) (*Classifier, error) {
	if _, err := ParseScheme(string(scheme)); err != nil {
		return nil, err
	}
	if scheme == "" {
		scheme = SchemeLanguage
	}
	if table == nil {
		t, err := Default()
		if err != nil {
			return nil, err
		}
		table = t
	}
	return &Classifier{scheme: scheme, table: table}, nil
}

// Scheme 返回分组方式
func (c *Classifier) Scheme() Scheme { return c.scheme }

// NeedsContent 报告给 path 分类时是否需要读取内容
func (c *Classifier) NeedsContent(p string) bool {
	switch c.scheme {
	case SchemeExtension:
		return false
	case SchemeMime:
		e := c.table.Lookup(p)
		return e == nil || e.Mime == ""
	default:
		e := c.table.Lookup(p)
		return e == nil || e.Ambiguous
	}
}

// Classify 返回文件的分类。binary 表示内容已被判定为二进制，
// content 可以为 nil（NeedsContent 为 false 时）
func (c *Classifier) Classify(p string, content []byte, binary bool) string {
	switch c.scheme {
	case SchemeExtension:
		return extensionOf(p)
	case SchemeMime:
		return c.classifyMime(p, content)
	default:
		return c.classifyLanguage(p, content, binary)
	}
}

func (c *Classifier) classifyLanguage(p string, content []byte, binary bool) string {
	if binary {
		return Binary
	}
	e := c.table.Lookup(p)
	if e != nil && !e.Ambiguous {
		return e.Name
	}
	// 扩展名有歧义或未收录时交给 enry 结合内容判断
	if lang := enry.GetLanguage(path.Base(p), content); lang != "" {
		return lang
	}
	if e != nil {
		return e.Name
	}
	return Unknown
}

func (c *Classifier) classifyMime(p string, content []byte) string {
	if e := c.table.Lookup(p); e != nil && e.Mime != "" {
		return e.Mime
	}
	return sniffGroup(content)
}

// extensionOf 返回小写且不带点的扩展名，没有扩展名时返回 other
func extensionOf(p string) string {
	base := path.Base(p)
	ext := path.Ext(base)
	if ext == "" || ext == base || ext == "." {
		return OtherExtension
	}
	return strings.ToLower(ext[1:])
}
