package subst

import (
	"strconv"
	"strings"
	"unicode"
)

// dispatch 根据 tok.tail 的前缀选择运算符。
//
// 前缀重叠时较长者优先（"^^" 先于 "^"，":-" 先于 ":"）。
func (s *substituter) dispatch(tok token, v value) (string, error) {
	tail := tok.tail

	switch {
	// 大小写转换
	case strings.HasPrefix(tail, "^^"):
		return convertCase(v.s, tail[2:], true, unicode.ToUpper), nil
	case strings.HasPrefix(tail, "^"):
		return convertCase(v.s, tail[1:], false, unicode.ToUpper), nil
	case strings.HasPrefix(tail, ",,"):
		return convertCase(v.s, tail[2:], true, unicode.ToLower), nil
	case strings.HasPrefix(tail, ","):
		return convertCase(v.s, tail[1:], false, unicode.ToLower), nil
	case strings.HasPrefix(tail, "~~"):
		return convertCase(v.s, tail[2:], true, swapCase), nil
	case strings.HasPrefix(tail, "~"):
		return convertCase(v.s, tail[1:], false, swapCase), nil

	// 按 glob 删除前后缀
	case strings.HasPrefix(tail, "%%"):
		return trimSuffix(v.s, tail[2:], true), nil
	case strings.HasPrefix(tail, "%"):
		return trimSuffix(v.s, tail[1:], false), nil
	case strings.HasPrefix(tail, "##"):
		return trimPrefix(v.s, tail[2:], true), nil
	case strings.HasPrefix(tail, "#"):
		return trimPrefix(v.s, tail[1:], false), nil

	// 默认值、替代值与必填校验
	case strings.HasPrefix(tail, ":-"):
		if !v.set || v.s == "" {
			return s.word(tail[2:])
		}
		return v.s, nil
	case strings.HasPrefix(tail, ":+"):
		if !v.set || v.s == "" {
			return v.s, nil
		}
		return s.word(tail[2:])
	case strings.HasPrefix(tail, ":?"):
		if !v.set || v.s == "" {
			return "", s.required(tok.name, tail[2:])
		}
		return v.s, nil
	case strings.HasPrefix(tail, ":"):
		return substring(tok, v.s)
	case strings.HasPrefix(tail, "-"):
		if !v.set {
			return s.word(tail[1:])
		}
		return v.s, nil
	case strings.HasPrefix(tail, "+"):
		if !v.set || v.s != "" {
			return v.s, nil
		}
		return s.word(tail[1:])
	case strings.HasPrefix(tail, "?"):
		if !v.set {
			return "", s.required(tok.name, tail[1:])
		}
		return v.s, nil

	// 模式替换：暂未实现，保持原值
	case strings.HasPrefix(tail, "//"), strings.HasPrefix(tail, "/#"), strings.HasPrefix(tail, "/%"):
		return v.s, nil
	}

	return "", syntaxError(tok.raw, ErrUnknownOperator)
}

func (s *substituter) required(name, arg string) error {
	msg, err := s.word(arg)
	if err != nil {
		return err
	}

	return &RequiredError{Name: name, Message: msg}
}

// substring 处理 ${VAR:N} 与 ${VAR:N:M}，按字符计数，越界部分截断。
func substring(tok token, s string) (string, error) {
	bounds := tok.tail[1:]
	startText, lengthText, hasLength := strings.Cut(bounds, ":")

	if !isDigits(startText) {
		return "", syntaxError(tok.raw, ErrBadSubstring)
	}
	start, err := strconv.Atoi(startText)
	if err != nil {
		return "", syntaxError(tok.raw, ErrBadSubstring)
	}
	length := 1
	if hasLength {
		if !isDigits(lengthText) {
			return "", syntaxError(tok.raw, ErrBadSubstring)
		}
		length, err = strconv.Atoi(lengthText)
		if err != nil {
			return "", syntaxError(tok.raw, ErrBadSubstring)
		}
	}

	runes := []rune(s)
	if start >= len(runes) {
		return "", nil
	}
	end := min(start+length, len(runes))

	return string(runes[start:end]), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// convertCase 对匹配 pattern 的字符应用 conv；all=false 时只处理首字符。
//
// pattern 为空表示匹配任意字符。
func convertCase(s, pattern string, all bool, conv func(rune) rune) string {
	if s == "" {
		return s
	}
	match := func(string) bool { return true }
	if pattern != "" {
		match = compileGlob(pattern).Match
	}

	runes := []rune(s)
	for i, r := range runes {
		if !all && i > 0 {
			break
		}
		if match(string(r)) {
			runes[i] = conv(r)
		}
	}

	return string(runes)
}

func swapCase(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	default:
		return r
	}
}
