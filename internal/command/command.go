// Package command 提供各子命令共享的 flags 与配置加载。
package command

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/config"
	"github.com/lwmacct/251218-go-pkg-dotenv/internal/version"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/cfgm"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/dotenv"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/subst"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// EnvPrefix 工具自身配置的环境变量前缀。
const EnvPrefix = "DOTENV_"

// LoadFlags 返回加载 .env 文件相关的 flags，每次调用返回新实例。
func LoadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "files",
			Aliases: []string{"f"},
			Value:   Defaults.Files,
			Usage:   ".env 文件，可重复指定，按顺序加载",
		},
		&cli.BoolFlag{
			Name:    "overwrite",
			Aliases: []string{"o"},
			Usage:   "覆盖已存在的环境变量",
		},
		&cli.BoolFlag{
			Name:  "must-exist",
			Usage: "文件不存在时报错",
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Value: Defaults.MaxDepth,
			Usage: "变量替换的最大递归层数，0 表示不限制",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别: debug|info|warn|error",
		},
	}
}

// LoadConfig 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags，并初始化日志。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), version.AppRawName,
		cfgm.WithEnvPrefix(EnvPrefix),
	)
	if err != nil {
		return nil, Fail(err)
	}

	setupLogger(cfg.Log.Level)
	slog.Debug("Config loaded", "files", cfg.Files, "overwrite", cfg.Overwrite, "max-depth", cfg.MaxDepth)

	return cfg, nil
}

// DotenvOptions 将配置转为 [dotenv.Option]。
func DotenvOptions(cfg *config.Config) []dotenv.Option {
	var opts []dotenv.Option
	if cfg.MustExist {
		opts = append(opts, dotenv.WithMustExist())
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, dotenv.WithMaxDepth(cfg.MaxDepth))
	}

	return opts
}

// Fail 将错误转为面向用户的退出错误。
//
// 缺少必填变量时退出码为 2，其余错误为 1。
func Fail(err error) error {
	if err == nil {
		return nil
	}
	if req, ok := subst.AsRequired(err); ok {
		return cli.Exit(fmt.Sprintf("missing required variable %s: %v", req.Name, err), 2)
	}

	return cli.Exit(err.Error(), 1)
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
