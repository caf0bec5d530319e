package configs

import "github.com/spf13/viper"

// CountConfig 统计命令的默认选项，命令行标志优先
type CountConfig struct {
	GroupBy   string   `mapstructure:"groupby" json:"groupby" yaml:"groupby" toml:"groupby" jsonschema:"enum=language,enum=mime,enum=extension"`
	Format    string   `mapstructure:"format" json:"format" yaml:"format" toml:"format" jsonschema:"enum=table,enum=csv,enum=json,enum=yaml,enum=toml"`
	Table     string   `mapstructure:"table" json:"table" yaml:"table" toml:"table"`                     // 自定义分类查找表路径
	CacheSize int      `mapstructure:"cache_size" json:"cache_size" yaml:"cache_size" toml:"cache_size"` // blob 统计缓存条目数，0 表示关闭
	Include   []string `mapstructure:"include" json:"include" yaml:"include" toml:"include"`
	Exclude   []string `mapstructure:"exclude" json:"exclude" yaml:"exclude" toml:"exclude"`
	Color     bool     `mapstructure:"color" json:"color" yaml:"color" toml:"color"`
}

func setCountDefaults(v *viper.Viper) {
	v.SetDefault("count.groupby", "language")
	v.SetDefault("count.format", "table")
	v.SetDefault("count.table", "")
	v.SetDefault("count.cache_size", 4096)
	v.SetDefault("count.include", []string{})
	v.SetDefault("count.exclude", []string{})
	v.SetDefault("count.color", false)
}
