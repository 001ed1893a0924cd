// Package config 提供 dotenv 命令行工具的配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .dotenv.yaml / ~/.dotenv.yaml / /etc/dotenv/config.yaml
//  3. 环境变量 - DOTENV_ 前缀，如 DOTENV_FILES=.env,.env.local
//  4. CLI flags
package config

// Config 应用配置。
type Config struct {
	Files     []string  `json:"files" desc:".env 文件列表，按顺序加载"`
	Overwrite bool      `json:"overwrite" desc:"覆盖已存在的环境变量"`
	MustExist bool      `json:"must-exist" desc:"文件不存在时报错"`
	MaxDepth  int       `json:"max-depth" desc:"变量替换的最大递归层数，0 表示不限制"`
	Format    string    `json:"format" desc:"show 命令的输出格式"`
	Log       LogConfig `json:"log" desc:"日志配置"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别: debug|info|warn|error"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Files:  []string{".env"},
		Format: "dotenv",
		Log: LogConfig{
			Level: "warn",
		},
	}
}
