package dotenv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/envmap"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/subst"
)

// Environment 一个 .env 文件替换后的键值对。
//
// 每个值按文件顺序替换：引用先查本文件中已定义的变量，再查回退层
// （默认为进程环境变量）。
type Environment struct {
	Filename string

	env  *envmap.Env
	opts *options
}

// NewEnvironment 读取并加载 filename。
func NewEnvironment(filename string, opts ...Option) (*Environment, error) {
	content, err := os.ReadFile(filename) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, err
	}

	e := newEnvironment(filename, newOptions(opts))
	if err := e.Load(bytes.NewReader(content)); err != nil {
		return nil, err
	}

	slog.Debug("Loaded env file", "path", filename, "count", e.env.Len())

	return e, nil
}

// ParseEnvironment 从 r 加载键值对，filename 仅用于错误信息。
func ParseEnvironment(filename string, r io.Reader, opts ...Option) (*Environment, error) {
	e := newEnvironment(filename, newOptions(opts))
	if err := e.Load(r); err != nil {
		return nil, err
	}

	return e, nil
}

func newEnvironment(filename string, o *options) *Environment {
	return &Environment{
		Filename: filename,
		env:      envmap.New(o.fallback),
		opts:     o,
	}
}

// Load 解析 r 并依次替换、保存每个值，后定义的同名 key 覆盖先前的值。
//
// 替换失败时返回带文件名与行号的错误，错误链保留 [subst.ErrSyntax]
// 或 [*subst.RequiredError]。
func (e *Environment) Load(r io.Reader) error {
	pairs, err := Parse(r)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.File = e.Filename
		}
		return err
	}

	substOpts := e.opts.substOptions()
	for _, p := range pairs {
		value := p.Value
		if !p.Literal() {
			value, err = subst.Substitute(p.Value, e.env, substOpts...)
			if err != nil {
				return fmt.Errorf("%s:%d: %s: %w", e.Filename, p.Line, p.Key, err)
			}
		}
		e.env.Set(p.Key, value)
	}

	return nil
}

// Lookup 实现 [envmap.Lookup]，包含回退层。
func (e *Environment) Lookup(key string) (string, bool) {
	return e.env.Lookup(key)
}

// Get 返回文件内定义的值。
func (e *Environment) Get(key string) (string, bool) {
	return e.env.Local(key)
}

// Keys 按文件顺序返回 key。
func (e *Environment) Keys() []string {
	return e.env.Keys()
}

// Map 返回文件内定义的副本。
func (e *Environment) Map() map[string]string {
	return e.env.Map()
}

// Apply 将未设置的变量写入进程环境变量，已存在的（包括空值）保持不变。
//
// 修改进程级状态，并发加载时需由调用方串行化。
func (e *Environment) Apply() error {
	return e.apply(false)
}

// ApplyOverwrite 将所有变量写入进程环境变量，覆盖已有值。
func (e *Environment) ApplyOverwrite() error {
	return e.apply(true)
}

func (e *Environment) apply(overwrite bool) error {
	for _, key := range e.env.Keys() {
		if !overwrite {
			if _, exists := os.LookupEnv(key); exists {
				continue
			}
		}
		value, _ := e.env.Local(key)
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}

	return nil
}
