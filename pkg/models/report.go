package models

// CountRecord 存储单个分类的累计统计，是聚合的基本单位
type CountRecord struct {
	Files  int   `json:"files" yaml:"files" toml:"files"`    // 文件数
	Lines  int   `json:"lines" yaml:"lines" toml:"lines"`    // 总行数
	Blanks int   `json:"blanks" yaml:"blanks" toml:"blanks"` // 空白行数
	Bytes  int64 `json:"bytes" yaml:"bytes" toml:"bytes"`    // 原始字节数
}

// Add 将另一条记录叠加到当前记录
func (r *CountRecord) Add(other CountRecord) {
	r.Files += other.Files
	r.Lines += other.Lines
	r.Blanks += other.Blanks
	r.Bytes += other.Bytes
}

// Report 是一次统计的完整结果
type Report struct {
	// Revision 是用户请求的修订（为空时表示 HEAD）
	Revision string `json:"revision" yaml:"revision"`
	// Commit 是修订解析得到的提交哈希
	Commit string `json:"commit" yaml:"commit"`
	// GroupBy 是本次使用的分组方案
	GroupBy string `json:"group_by" yaml:"group_by"`

	// Categories 以分类名为键，值为该分类的聚合统计
	Categories map[string]CountRecord `json:"categories" yaml:"categories"`
	// Total 为所有分类之和
	Total CountRecord `json:"total" yaml:"total"`
}
