package expand

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/dotenv"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/subst"
)

// action 每个参数单独替换，结果逐行输出。
func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	env, err := dotenv.ReadFiles(cfg.Files, command.DotenvOptions(cfg)...)
	if err != nil {
		return command.Fail(err)
	}

	var opts []subst.Option
	if cfg.MaxDepth > 0 {
		opts = append(opts, subst.WithMaxDepth(cfg.MaxDepth))
	}

	for _, text := range cmd.Args().Slice() {
		out, err := subst.Substitute(text, env, opts...)
		if err != nil {
			return command.Fail(err)
		}
		if _, err := fmt.Fprintln(cmd.Root().Writer, out); err != nil {
			return err
		}
	}

	return nil
}
