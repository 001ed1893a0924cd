// Package subst 提供 .env 取值中的变量替换。
//
// 识别 $VAR 与 ${VAR...} 两种写法，按 [envmap.Lookup] 查找变量（通常为
// 文件内定义优先、进程环境变量兜底），并支持 Bash 风格的参数展开运算符。
// 不执行命令替换 $(...)、算术展开与数组变量。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 支持的语法
//
//	$VAR ${VAR}        变量值，未定义时为空字符串
//	\$VAR \${VAR}      转义，原样输出（去掉反斜杠）
//	${#VAR}            值的字符数
//	${!VAR}            间接引用：以 VAR 的值作为变量名
//	${VAR^^} ${VAR^}   全部 / 首字符转大写
//	${VAR,,} ${VAR,}   全部 / 首字符转小写
//	${VAR~~} ${VAR~}   全部 / 首字符大小写互换
//	${VAR%%glob}       删除最长的匹配后缀
//	${VAR%glob}        删除最短的匹配后缀
//	${VAR##glob}       删除最长的匹配前缀
//	${VAR#glob}        删除最短的匹配前缀
//	${VAR-word}        VAR 未定义时展开 word
//	${VAR:-word}       VAR 未定义或为空时展开 word
//	${VAR+word}        VAR 已定义且为空时展开 word，否则保持原值
//	${VAR:+word}       VAR 非空时展开 word，否则保持原值
//	${VAR?msg}         VAR 未定义时返回 [*RequiredError]
//	${VAR:?msg}        VAR 未定义或为空时返回 [*RequiredError]
//	${VAR:N} ${VAR:N:M} 从 N 开始截取 M 个字符（M 默认为 1）
//	${VAR//...} ${VAR/#...} ${VAR/%...} 可识别但不做替换，原值返回
//
// 大小写运算符后可跟 glob，仅转换匹配的字符（如 ${VAR^^[aeiou]}）。
// 运算符参数内可嵌套 ${...}，如 ${A:-${B:-default}}。
//
// # 错误
//
// 无法识别的运算符、非法的截取范围、带运算符的 ${#VAR} 属于语法错误，匹配 [ErrSyntax]，
// 调用方应终止处理当前文件。${VAR?} / ${VAR:?} 的失败返回 [*RequiredError]，
// 匹配 [ErrRequired]，可以被调用方捕获后提示用户。
//
// # 快速开始
//
//	env := envmap.New(envmap.OS)
//	env.Set("HOST", "example.com")
//	url, err := subst.Substitute("https://${HOST}:${PORT:-443}", env)
package subst
