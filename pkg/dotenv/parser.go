package dotenv

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Pair 文件中的一行 KEY=VALUE（值尚未做变量替换）。
type Pair struct {
	Key   string
	Value string
	Quote byte // 0、'\'' 或 '"'
	Line  int
}

// Literal 报告值是否应原样使用（单引号值不做变量替换）。
func (p Pair) Literal() bool {
	return p.Quote == '\''
}

// ParseError 描述无法解析的行。
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}

	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse 按文件顺序读取 KEY=VALUE 行。
//
// 支持的写法：
//   - 空行与 # 注释
//   - 可选的 export 前缀
//   - KEY=VALUE 或 KEY: VALUE
//   - 'single'：原样保留，不做变量替换
//   - "double"：转义 \n \r \t \" \\，其余反斜杠保留（\$ 交给变量替换处理）
//   - 无引号：去掉首尾空白与行尾的 " #注释"
func Parse(r io.Reader) ([]Pair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var pairs []Pair
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		pair, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		if !ok {
			continue
		}
		pair.Line = lineNo
		pairs = append(pairs, pair)
	}

	return pairs, scanner.Err()
}

func isKeyChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_' || ch == '.'
}

func parseLine(line string) (Pair, bool, error) {
	line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
	if line == "" || strings.HasPrefix(line, "#") {
		return Pair{}, false, nil
	}
	if rest, ok := strings.CutPrefix(line, "export "); ok {
		line = strings.TrimLeft(rest, " \t")
	}

	i := 0
	for i < len(line) && isKeyChar(line[i]) {
		i++
	}
	key := line[:i]
	if key == "" {
		return Pair{}, false, fmt.Errorf("missing key in %q", line)
	}

	rest := strings.TrimLeft(line[i:], " \t")
	if rest == "" || (rest[0] != '=' && rest[0] != ':') {
		return Pair{}, false, fmt.Errorf("expected '=' after %s", key)
	}
	raw := strings.TrimLeft(rest[1:], " \t")

	value, quote, err := parseValue(raw)
	if err != nil {
		return Pair{}, false, fmt.Errorf("%s: %w", key, err)
	}

	return Pair{Key: key, Value: value, Quote: quote}, true, nil
}

func parseValue(raw string) (string, byte, error) {
	if raw == "" {
		return "", 0, nil
	}

	switch raw[0] {
	case '\'':
		end := strings.IndexByte(raw[1:], '\'')
		if end < 0 {
			return "", 0, errors.New("unterminated single quote")
		}
		if err := checkTrailing(raw[end+2:]); err != nil {
			return "", 0, err
		}
		return raw[1 : end+1], '\'', nil

	case '"':
		var buf strings.Builder
		for i := 1; i < len(raw); i++ {
			ch := raw[i]
			switch {
			case ch == '"':
				if err := checkTrailing(raw[i+1:]); err != nil {
					return "", 0, err
				}
				return buf.String(), '"', nil
			case ch == '\\' && i+1 < len(raw):
				i++
				switch raw[i] {
				case 'n':
					buf.WriteByte('\n')
				case 'r':
					buf.WriteByte('\r')
				case 't':
					buf.WriteByte('\t')
				case '"', '\\':
					buf.WriteByte(raw[i])
				default:
					buf.WriteByte('\\')
					buf.WriteByte(raw[i])
				}
			default:
				buf.WriteByte(ch)
			}
		}
		return "", 0, errors.New("unterminated double quote")
	}

	if idx := strings.Index(raw, " #"); idx >= 0 {
		raw = raw[:idx]
	}

	return strings.TrimSpace(raw), 0, nil
}

// checkTrailing 引号之后只允许空白与注释。
func checkTrailing(rest string) error {
	rest = strings.TrimSpace(rest)
	if rest == "" || strings.HasPrefix(rest, "#") {
		return nil
	}

	return fmt.Errorf("unexpected %q after closing quote", rest)
}
