package subst

// options 替换选项。
type options struct {
	maxDepth int // 递归展开的最大层数，0 表示不限制
}

// Option 替换选项函数。
type Option func(*options)

// WithMaxDepth 限制递归展开层数（间接引用、默认值等运算符会递归）。
//
// 默认不限制：形如 A='!A' 再引用 ${!A} 的自引用会无限递归。
// 超出限制时返回匹配 [ErrDepth] 的错误。
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}
