package classify

import (
	_ "embed"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var embeddedTable []byte

// Entry 是查找表中的一个分类
type Entry struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Mime       string   `yaml:"mime"`
	Extensions []string `yaml:"extensions"`
	Filenames  []string `yaml:"filenames"`
	Ambiguous  bool     `yaml:"ambiguous"`
}

// Table 是按文件名与扩展名索引的分类表
type Table struct {
	Version   string  `yaml:"version"`
	Languages []Entry `yaml:"languages"`

	byExt  map[string]*Entry
	byName map[string]*Entry
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default 返回内置查找表
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = ParseTable(embeddedTable)
	})
	return defaultTable, defaultErr
}

// LoadTable 从文件加载查找表；path 为空时返回内置表
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lookup table: %w", err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTable 解析 YAML 查找表并建立索引
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse lookup table: %w", err)
	}
	if len(t.Languages) == 0 {
		return nil, fmt.Errorf("lookup table has no entries")
	}
	t.byExt = make(map[string]*Entry)
	t.byName = make(map[string]*Entry)
	for i := range t.Languages {
		e := &t.Languages[i]
		if e.Name == "" {
			return nil, fmt.Errorf("lookup table entry %d has no name", i)
		}
		for _, ext := range e.Extensions {
			key := strings.ToLower(ext)
			if !strings.HasPrefix(key, ".") {
				key = "." + key
			}
			if prev, ok := t.byExt[key]; ok {
				return nil, fmt.Errorf("extension %s mapped twice (%s, %s)", key, prev.Name, e.Name)
			}
			t.byExt[key] = e
		}
		for _, fn := range e.Filenames {
			key := strings.ToLower(fn)
			if prev, ok := t.byName[key]; ok {
				return nil, fmt.Errorf("filename %s mapped twice (%s, %s)", fn, prev.Name, e.Name)
			}
			t.byName[key] = e
		}
	}
	return &t, nil
}

// Lookup 查找路径对应的条目：先精确匹配文件名，再由长到短匹配多段扩展名
// （例如 `a.tar.gz` 先尝试 `.tar.gz` 再尝试 `.gz`），均忽略大小写
func (t *Table) Lookup(p string) *Entry {
	base := strings.ToLower(path.Base(p))
	if e, ok := t.byName[base]; ok {
		return e
	}
	for i := 0; i < len(base); i++ {
		if base[i] != '.' {
			continue
		}
		if e, ok := t.byExt[base[i:]]; ok {
			return e
		}
	}
	return nil
}
