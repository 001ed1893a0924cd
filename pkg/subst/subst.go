package subst

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/envmap"
)

// ═══════════════════════════════════════════════════════════════════════════
// 变量标记
// ═══════════════════════════════════════════════════════════════════════════

// token 值字符串中的一次 $ 引用。
type token struct {
	raw     string // 原始文本，包含可能的反斜杠
	end     int    // 在输入中的结束位置（不含）
	escaped bool   // 以反斜杠开头
	braced  bool   // ${...} 形式
	sigil   byte   // 0、'#'（长度）或 '!'（间接引用）
	name    string
	tail    string // 运算符及其参数，仅 ${...} 形式存在
}

func isNameChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_'
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isNameChar(s[i]) {
			return false
		}
	}

	return true
}

// scanToken 尝试从 text[start:] 读取一个标记。
//
// 语法：[\] $ (不跟 '(') [{] [#!] [name] [tail] [}]
func scanToken(text string, start int) (token, bool) {
	tok := token{}
	i := start
	if text[i] == '\\' {
		if i+1 >= len(text) || text[i+1] != '$' {
			return tok, false
		}
		tok.escaped = true
		i++
	}
	if text[i] != '$' {
		return tok, false
	}
	i++
	if i < len(text) && text[i] == '(' {
		return tok, false
	}

	if i < len(text) && text[i] == '{' {
		tok.braced = true
		i++
	}
	if i < len(text) && (text[i] == '#' || text[i] == '!') {
		tok.sigil = text[i]
		i++
	}

	nameStart := i
	for i < len(text) && isNameChar(text[i]) {
		i++
	}
	tok.name = text[nameStart:i]

	if tok.braced {
		end := findClosingBrace(text, i)
		tok.tail = text[i:end]
		i = end
		if i < len(text) {
			i++ // '}'
		}
	}

	tok.raw = text[start:i]
	tok.end = i

	return tok, true
}

// findClosingBrace 返回与当前 ${ 配对的 '}' 位置，未闭合时返回 len(text)。
//
// 跳过 "\}"，并跟踪嵌套的 ${...}。
func findClosingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '\\' && i+1 < len(text) && text[i+1] == '}':
			i++
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return len(text)
}

// ═══════════════════════════════════════════════════════════════════════════
// 替换
// ═══════════════════════════════════════════════════════════════════════════

// value 变量查找结果，set=false 表示未定义。
type value struct {
	s   string
	set bool
}

type substituter struct {
	env      envmap.Lookup
	maxDepth int
	depth    int
}

// Substitute 替换 text 中的变量引用并返回结果。
//
// env 为 nil 时视为空环境。text 与 env 都不会被修改；
// 不含未转义 $ 的字符串原样返回。
func Substitute(text string, env envmap.Lookup, opts ...Option) (string, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if env == nil {
		env = envmap.Empty
	}
	s := &substituter{env: env, maxDepth: o.maxDepth}

	return s.substitute(text)
}

// MustSubstitute 调用 [Substitute] 并在失败时 panic。
func MustSubstitute(text string, env envmap.Lookup, opts ...Option) string {
	out, err := Substitute(text, env, opts...)
	if err != nil {
		panic(fmt.Sprintf("subst: %v", err))
	}

	return out
}

// ExpandEnv 以进程环境变量为唯一来源执行 [Substitute]。
func ExpandEnv(text string, opts ...Option) (string, error) {
	return Substitute(text, envmap.OS, opts...)
}

func (s *substituter) substitute(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}
	if s.maxDepth > 0 && s.depth >= s.maxDepth {
		return "", fmt.Errorf("%q: %w", text, ErrDepth)
	}

	s.depth++
	defer func() { s.depth-- }()

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		tok, ok := scanToken(text, i)
		if !ok {
			buf.WriteByte(text[i])
			i++
			continue
		}
		i = tok.end

		switch {
		case tok.escaped:
			buf.WriteString(tok.raw[1:])
		case tok.name == "":
			buf.WriteString(tok.raw)
		default:
			expanded, err := s.expand(tok)
			if err != nil {
				return "", err
			}
			buf.WriteString(expanded)
		}
	}

	return buf.String(), nil
}

func (s *substituter) expand(tok token) (string, error) {
	v := s.lookup(tok.name)

	switch tok.sigil {
	case '#':
		if tok.tail != "" {
			return "", syntaxError(tok.raw, ErrBadLength)
		}
		return strconv.Itoa(utf8.RuneCountInString(v.s)), nil
	case '!':
		var err error
		if v, err = s.indirect(v); err != nil {
			return "", err
		}
	}

	if tok.tail == "" {
		return v.s, nil
	}

	return s.dispatch(tok, v)
}

func (s *substituter) lookup(name string) value {
	v, ok := s.env.Lookup(name)
	return value{s: v, set: ok}
}

// indirect 以 v 的值作为变量名再次展开。
func (s *substituter) indirect(v value) (value, error) {
	if !v.set || v.s == "" {
		return value{}, nil
	}
	if isName(v.s) {
		return s.lookup(v.s), nil
	}

	out, err := s.substitute("${" + v.s + "}")
	if err != nil {
		return value{}, err
	}

	return value{s: out, set: true}, nil
}

// word 展开运算符参数。
func (s *substituter) word(arg string) (string, error) {
	return s.substitute(strings.ReplaceAll(arg, `\}`, "}"))
}
