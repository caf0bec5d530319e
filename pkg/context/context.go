// Package context 保存一次命令执行共享的配置、viper 实例与日志记录器
package context

import (
	"context"

	"github.com/spf13/viper"

	"github.com/yeisme/gitloc/pkg/configs"
	"github.com/yeisme/gitloc/pkg/utils/log"
)

// GlobalFlags 全局命令行标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	VersionEnable bool
}

// GitlocContext 命令执行上下文
type GitlocContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 配置来源
	Logger log.Logger      // 日志记录器
}

// InitGitlocContext 加载配置并初始化日志；命令行标志覆盖配置中的 app 设置
// 返回的 Context 携带日志记录器，可通过 zerolog.Ctx 取出
func InitGitlocContext(parent context.Context, flags GlobalFlags) (*GitlocContext, error) {
	v := viper.New()
	config, err := configs.Load(v, flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if flags.Debug {
		config.App.Debug = true
	}
	if flags.Verbose {
		config.App.Verbose = true
	}
	if flags.Quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(parent, &config.Log, &config.App)

	return &GitlocContext{
		Context: logger.WithContext(parent),
		Config:  config,
		Viper:   v,
		Logger:  logger,
	}, nil
}
