package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command/expand"
	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command/run"
	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command/show"
	"github.com/lwmacct/251218-go-pkg-dotenv/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "加载 .env 文件并替换其中的变量引用",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			version.Command,
			run.Command,
			show.Command,
			expand.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
