package dotenv

import (
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/envmap"
	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/subst"
)

// options 加载选项。
type options struct {
	fallback  envmap.Lookup // 文件内未定义时的查找来源，默认 envmap.OS
	maxDepth  int           // 传给 subst.WithMaxDepth，0 表示不限制
	mustExist bool          // 文件不存在时返回错误而不是跳过
}

// Option 加载选项函数。
type Option func(*options)

// WithFallback 设置文件内未定义变量的查找来源。
func WithFallback(l envmap.Lookup) Option {
	return func(o *options) {
		o.fallback = l
	}
}

// WithMaxDepth 限制变量替换的递归层数，见 [subst.WithMaxDepth]。
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithMustExist 要求所有文件都存在。
//
// 默认情况下 [Load]、[Overload]、[ReadFiles] 跳过不存在的文件。
func WithMustExist() Option {
	return func(o *options) {
		o.mustExist = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fallback == nil {
		o.fallback = envmap.OS
	}

	return o
}

func (o *options) substOptions() []subst.Option {
	if o.maxDepth <= 0 {
		return nil
	}

	return []subst.Option{subst.WithMaxDepth(o.maxDepth)}
}
