package command_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/internal/command"
	"github.com/lwmacct/251218-go-pkg-dotenv/internal/config"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/subst"
)

func TestFail(t *testing.T) {
	assert.NoError(t, command.Fail(nil))

	var exit cli.ExitCoder

	err := command.Fail(fmt.Errorf(".env:3: KEY: %w", &subst.RequiredError{Name: "TOKEN"}))
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 2, exit.ExitCode())
	assert.Contains(t, err.Error(), "missing required variable TOKEN")

	err = command.Fail(fmt.Errorf(".env:1: KEY: ${X@}: %w", subst.ErrUnknownOperator))
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 1, exit.ExitCode())
	assert.Contains(t, err.Error(), "${X@}")
}

func TestDotenvOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Empty(t, command.DotenvOptions(&cfg))

	cfg.MustExist = true
	cfg.MaxDepth = 4
	assert.Len(t, command.DotenvOptions(&cfg), 2)
}
