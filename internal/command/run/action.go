package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/dotenv"
)

func action(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("run: no command given", 1)
	}

	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	// 修改的是进程环境变量，子进程默认继承
	err = dotenv.LoadFiles(cfg.Files, cfg.Overwrite, command.DotenvOptions(cfg)...)
	if err != nil {
		return command.Fail(err)
	}

	return execute(ctx, cmd, args)
}

// execute 运行子进程并透传其退出码。
func execute(ctx context.Context, cmd *cli.Command, args []string) error {
	child := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // running the user's command is the point
	child.Stdin = os.Stdin
	child.Stdout = cmd.Root().Writer
	child.Stderr = cmd.Root().ErrWriter

	slog.Debug("Running command", "path", child.Path, "args", args[1:])

	err := child.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1 // 被信号终止
		}
		return cli.Exit("", code)
	}

	return cli.Exit(fmt.Sprintf("run %s: %v", args[0], err), 127)
}
