package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestCommand_ArgsAreNotSubcommands(t *testing.T) {
	assert.Empty(t, Command.Commands)

	// version 应作为外部程序执行，PATH 为空目录时找不到可执行文件
	t.Setenv("PATH", t.TempDir())
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("RUN_TEST_APP=demo\n"), 0o600))

	// 阻止 cli 在测试中调用 os.Exit
	Command.ExitErrHandler = func(context.Context, *cli.Command, error) {}
	t.Cleanup(func() { Command.ExitErrHandler = nil })

	err := Command.Run(context.Background(), []string{"run", "-f", path, "version"})
	require.Error(t, err)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 127, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "run version")
}
