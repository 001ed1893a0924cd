package subst

import (
	"errors"
	"fmt"
)

var (
	// Base error; every error returned by this package wraps it
	Err = errors.New("substitution error")

	// Malformed input; processing of the current value must stop
	ErrSyntax          = fmt.Errorf("bad substitution (%w)", Err)
	ErrUnknownOperator = fmt.Errorf("unknown expansion operator (%w)", ErrSyntax)
	ErrBadLength       = fmt.Errorf("length expansion takes no operator (%w)", ErrSyntax)
	ErrBadSubstring    = fmt.Errorf("bad substring offset or length (%w)", ErrUnknownOperator)

	ErrRequired = fmt.Errorf("required variable not set (%w)", Err)
	ErrDepth    = fmt.Errorf("expansion nested too deeply (%w)", Err)
)

// RequiredError 由 ${VAR?msg} / ${VAR:?msg} 在变量缺失时返回。
type RequiredError struct {
	Name    string // 变量名
	Message string // 运算符后的提示信息（已展开），可能为空
}

func (e *RequiredError) Error() string {
	if e.Message == "" {
		return e.Name + ": parameter null or not set"
	}

	return e.Name + ": " + e.Message
}

func (e *RequiredError) Unwrap() error {
	return ErrRequired
}

// IsFatal 报告 err 是否表示输入本身有误（语法错误或嵌套过深）。
func IsFatal(err error) bool {
	return errors.Is(err, ErrSyntax) || errors.Is(err, ErrDepth)
}

// AsRequired 从错误链中取出 [*RequiredError]。
func AsRequired(err error) (*RequiredError, bool) {
	var req *RequiredError
	if errors.As(err, &req) {
		return req, true
	}

	return nil, false
}

func syntaxError(raw string, err error) error {
	return fmt.Errorf("%s: %w", raw, err)
}
