package show

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/dotenv"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	write, ok := formats[cfg.Format]
	if !ok {
		return cli.Exit(fmt.Sprintf("show: unknown format %q (want %s)", cfg.Format, formatNames()), 1)
	}

	env, err := dotenv.ReadFiles(cfg.Files, command.DotenvOptions(cfg)...)
	if err != nil {
		return command.Fail(err)
	}

	return write(cmd.Root().Writer, env)
}
