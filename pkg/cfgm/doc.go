// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON/TOML，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，各格式共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
//	type Config struct {
//	    Files []string `json:"files"`
//	    Log   struct {
//	        Level string `json:"level"`
//	    } `json:"log"`
//	}
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "dotenv",
//	    cfgm.WithEnvPrefix("DOTENV_"),
//	)
//
// # 变量替换
//
// 配置文件在解析前经过 [subst.ExpandEnv]，可引用进程环境变量：
//
//	# .dotenv.yaml
//	files:
//	  - .env
//	  - .env.${APP_ENV:-development}
//
// 使用 [WithoutExpansion] 可禁用该行为。
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - files → --files
//   - log.level → --log-level
package cfgm
