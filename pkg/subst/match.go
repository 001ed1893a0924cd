package subst

import (
	"strings"

	"github.com/gobwas/glob"
)

// compileGlob 将 Shell 通配符（*、?、[...]）编译为整串匹配的 glob。
//
// 花括号按字面处理，[^...] 等同于 [!...]；无法编译的模式退化为字面匹配。
func compileGlob(pattern string) glob.Glob {
	g, err := glob.Compile(translatePattern(pattern))
	if err != nil {
		return glob.MustCompile(glob.QuoteMeta(pattern))
	}

	return g
}

// translatePattern 转义花括号，并将字符类开头的 ^ 改写为 !。
func translatePattern(pattern string) string {
	if !strings.ContainsAny(pattern, "{}^") {
		return pattern
	}

	var buf strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\':
			buf.WriteByte(c)
			if i+1 < len(pattern) {
				i++
				buf.WriteByte(pattern[i])
			}
		case c == '[' && !inClass:
			inClass = true
			buf.WriteByte(c)
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				buf.WriteByte('!')
				i++
			}
		case c == ']' && inClass:
			inClass = false
			buf.WriteByte(c)
		case c == '{', c == '}':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		default:
			buf.WriteByte(c)
		}
	}

	return buf.String()
}

// matchesEmpty 报告 pattern 能否匹配空串：只有空模式或全为 * 的模式可以。
func matchesEmpty(pattern string) bool {
	return strings.Trim(pattern, "*") == ""
}

// runeBounds 返回 s 中所有字符边界，包含 0 与 len(s)。
func runeBounds(s string) []int {
	bounds := make([]int, 0, len(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}

	return append(bounds, len(s))
}

// trimPrefix 删除 s 匹配 pattern 的前缀。
//
// longest=true 时候选前缀从长到短尝试，否则从短到长，首个匹配生效。
// 空前缀仅在 pattern 能匹配空串时参与。
func trimPrefix(s, pattern string, longest bool) string {
	g := compileGlob(pattern)
	empty := matchesEmpty(pattern)
	bounds := runeBounds(s)
	for n := range bounds {
		k := bounds[n]
		if longest {
			k = bounds[len(bounds)-1-n]
		}
		if k == 0 && !empty {
			continue
		}
		if g.Match(s[:k]) {
			return s[k:]
		}
	}

	return s
}

// trimSuffix 删除 s 匹配 pattern 的后缀，规则同 [trimPrefix]。
func trimSuffix(s, pattern string, longest bool) string {
	g := compileGlob(pattern)
	empty := matchesEmpty(pattern)
	bounds := runeBounds(s)
	for n := range bounds {
		k := bounds[len(bounds)-1-n]
		if longest {
			k = bounds[n]
		}
		if k == len(s) && !empty {
			continue
		}
		if g.Match(s[k:]) {
			return s[:k]
		}
	}

	return s
}
