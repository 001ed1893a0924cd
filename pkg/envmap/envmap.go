// Package envmap 提供分层的环境变量查找。
//
// [Env] 保存文件内已定义的变量（保持定义顺序），查找未命中时回退到
// fallback（通常是进程环境变量 [OS]）。
//
// 查找结果区分 "未定义" 与 "空字符串"：
//
//	env := envmap.New(envmap.OS)
//	env.Set("EMPTY", "")
//	v, ok := env.Lookup("EMPTY")   // "", true
//	v, ok = env.Lookup("MISSING")  // "", false
package envmap

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// Lookup 按 key 查找变量，ok=false 表示未定义。
type Lookup interface {
	Lookup(key string) (string, bool)
}

// LookupFunc 将普通函数适配为 [Lookup]。
type LookupFunc func(key string) (string, bool)

// Lookup 实现 [Lookup]。
func (f LookupFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// OS 读取当前进程环境变量。
var OS Lookup = LookupFunc(os.LookupEnv)

// Empty 不包含任何变量。
var Empty Lookup = LookupFunc(func(string) (string, bool) { return "", false })

// Env 有序的本地变量表，附带回退层。
//
// 零值可用，此时没有回退层。Env 不是并发安全的。
type Env struct {
	keys     []string
	vals     map[string]string
	fallback Lookup
}

// New 创建以 fallback 为回退层的 Env，fallback 为 nil 表示不回退。
func New(fallback Lookup) *Env {
	return &Env{
		vals:     make(map[string]string),
		fallback: fallback,
	}
}

// FromMap 以 m 为本地定义创建 Env，key 按字典序记录。
func FromMap(m map[string]string, fallback Lookup) *Env {
	env := New(fallback)
	for _, key := range slices.Sorted(maps.Keys(m)) {
		env.Set(key, m[key])
	}

	return env
}

// Set 写入本地定义；重复 key 覆盖值但保留首次出现的位置。
func (e *Env) Set(key, value string) {
	if e.vals == nil {
		e.vals = make(map[string]string)
	}
	if _, ok := e.vals[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.vals[key] = value
}

// Lookup 先查本地定义（空字符串也算已定义），再查回退层。
func (e *Env) Lookup(key string) (string, bool) {
	if v, ok := e.vals[key]; ok {
		return v, true
	}
	if e.fallback == nil {
		return "", false
	}

	return e.fallback.Lookup(key)
}

// Get 返回 [Env.Lookup] 的值，未定义时为空字符串。
func (e *Env) Get(key string) string {
	v, _ := e.Lookup(key)
	return v
}

// Local 只查本地定义。
func (e *Env) Local(key string) (string, bool) {
	v, ok := e.vals[key]
	return v, ok
}

// Keys 按定义顺序返回本地 key。
func (e *Env) Keys() []string {
	return append([]string(nil), e.keys...)
}

// Len 返回本地定义数量。
func (e *Env) Len() int {
	return len(e.keys)
}

// Map 返回本地定义的副本。
func (e *Env) Map() map[string]string {
	out := make(map[string]string, len(e.vals))
	maps.Copy(out, e.vals)

	return out
}

// Environ 以 "KEY=VALUE" 形式按定义顺序返回本地定义。
func (e *Env) Environ() []string {
	out := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, k+"="+e.vals[k])
	}

	return out
}

// ParseEnviron 解析 os.Environ() 形式的列表，无 "=" 的条目被忽略。
func ParseEnviron(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			vars[key] = value
		}
	}

	return vars
}
