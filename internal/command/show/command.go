// Package show 提供打印替换结果的命令。
package show

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command"
)

// Command 打印命令
var Command = &cli.Command{
	Name:  "show",
	Usage: "打印 .env 文件替换后的键值对",
	Flags: append(command.LoadFlags(),
		&cli.StringFlag{
			Name:  "format",
			Value: command.Defaults.Format,
			Usage: "输出格式: " + formatNames(),
		},
	),
	Action: action,
}
