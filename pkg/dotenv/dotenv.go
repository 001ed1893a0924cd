// Package dotenv 将 .env 文件中的键值对加载到进程环境变量。
//
// 每个值在保存前经过 [subst.Substitute] 替换，可以引用同一文件中先前定义的
// 变量，未定义时回退到进程环境变量：
//
//	# .env
//	HOST=example.com
//	URL="https://${HOST}:${PORT:-443}"
//	GREETING='literal $HOST'
//
// # 快速开始
//
//	// 只设置尚未存在的变量
//	if err := dotenv.Load(); err != nil { ... }
//
//	// 覆盖已有变量
//	if err := dotenv.Overload(".env", ".env.local"); err != nil { ... }
//
//	// 只读取，不修改进程环境变量
//	env, err := dotenv.Read(".env")
//
// # 错误
//
// 语法错误（无法识别的运算符等）匹配 [subst.ErrSyntax]；
// ${VAR:?msg} 失败时可用 [subst.AsRequired] 取出变量名。
package dotenv

import (
	"errors"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/envmap"
)

// DefaultFile 未指定文件时加载的文件名。
const DefaultFile = ".env"

func defaultFiles(filenames []string) []string {
	if len(filenames) == 0 {
		return []string{DefaultFile}
	}

	return filenames
}

// Load 依次加载文件并写入进程环境变量，不覆盖已存在的变量。
//
// 未指定文件时加载 [DefaultFile]，不存在的文件被跳过。
// 先加载的文件优先；后面的文件可以引用前面文件写入的变量。
func Load(filenames ...string) error {
	return LoadFiles(filenames, false)
}

// Overload 与 [Load] 相同，但覆盖已存在的变量，后加载的文件优先。
func Overload(filenames ...string) error {
	return LoadFiles(filenames, true)
}

// LoadFiles 是 [Load] / [Overload] 的带选项版本。
func LoadFiles(filenames []string, overwrite bool, opts ...Option) error {
	o := newOptions(opts)
	for _, filename := range defaultFiles(filenames) {
		env, err := NewEnvironment(filename, opts...)
		if err != nil {
			if skipMissing(o, filename, err) {
				continue
			}
			return err
		}

		if overwrite {
			err = env.ApplyOverwrite()
		} else {
			err = env.Apply()
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Read 读取文件并合并结果，不修改进程环境变量。
func Read(filenames ...string) (*envmap.Env, error) {
	return ReadFiles(filenames)
}

// ReadFiles 是 [Read] 的带选项版本。
//
// 返回的 Env 按首次出现顺序保存所有 key，同名 key 后读取的文件优先；
// 每个文件都能引用之前文件中的定义。返回值的回退层与选项中的回退层一致。
func ReadFiles(filenames []string, opts ...Option) (*envmap.Env, error) {
	o := newOptions(opts)
	merged := envmap.New(o.fallback)

	for _, filename := range defaultFiles(filenames) {
		env, err := NewEnvironment(filename, append(slices.Clip(opts), WithFallback(merged))...)
		if err != nil {
			if skipMissing(o, filename, err) {
				continue
			}
			return nil, err
		}
		for _, key := range env.Keys() {
			value, _ := env.Get(key)
			merged.Set(key, value)
		}
	}

	return merged, nil
}

func skipMissing(o *options, filename string, err error) bool {
	if o.mustExist || !errors.Is(err, fs.ErrNotExist) {
		return false
	}
	slog.Debug("Env file not found, skipping", "path", filename)

	return true
}
