// Package run 提供加载 .env 文件后执行子进程的命令。
package run

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command"
)

// Command 执行命令
var Command = &cli.Command{
	Name:      "run",
	Usage:     "加载 .env 文件到环境变量后执行命令",
	ArgsUsage: "[--] command [args...]",
	Flags:     command.LoadFlags(),
	Action:    action,
}
