// Package expand 提供对任意文本执行变量替换的命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command"
)

// Command 替换命令
var Command = &cli.Command{
	Name:      "expand",
	Usage:     "以 .env 文件与环境变量为来源替换文本中的变量",
	ArgsUsage: "TEXT...",
	Flags:     command.LoadFlags(),
	Action:    action,
}
