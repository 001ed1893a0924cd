package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/subst"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 指定 appName 时只返回应用专属路径，避免误读项目中的通用 config.yaml：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//
// 未指定时返回 config.yaml 与 config/config.yaml。
func DefaultPaths(appName ...string) []string {
	if len(appName) == 0 || appName[0] == "" {
		return []string{"config.yaml", "config/config.yaml"}
	}

	name := appName[0]
	paths := []string{"." + name + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+name+".yaml"))
	}

	return append(paths, "/etc/"+name+"/config.yaml")
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]，命中首个文件即停止
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML、JSON 与 TOML 共享同一套 key。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	configMap := structToMap(defaultConfig)

	path, fileMap, err := readConfigFile(o)
	if err != nil {
		return nil, err
	}
	if fileMap != nil {
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path, "expansion", !o.noExpansion)
	}

	if o.envPrefix != "" {
		for envKey, configPath := range generateEnvBindings(o.envPrefix, collectConfigKeys(defaultConfig)) {
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	if o.cmd != nil {
		applyCLIFlags(o.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，注入 [WithCommand]，appName 非空时注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	base := []Option{WithCommand(cmd)}
	if appName != "" {
		base = append(base, WithAppName(appName))
	}

	return Load(defaultConfig, append(base, opts...)...)
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad[T any](defaultConfig T, opts ...Option) *T {
	cfg, err := Load(defaultConfig, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// readConfigFile 按顺序查找配置文件，返回首个命中文件解析后的 map。
//
// 文件内容在解析前经过 [subst.ExpandEnv]，未找到任何文件时返回 nil map。
func readConfigFile(o *options) (string, map[string]any, error) {
	paths := o.configPaths
	if len(paths) == 0 {
		paths = DefaultPaths(o.appName)
	}

	for _, path := range paths {
		if o.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(o.baseDir, path)
		}

		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		if !o.noExpansion {
			expanded, err := subst.ExpandEnv(string(content))
			if err != nil {
				return "", nil, fmt.Errorf("expand variables in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return "", nil, fmt.Errorf("parse config file %s: %w", path, err)
		}

		return path, fileMap, nil
	}

	slog.Debug("No config file found, using defaults")

	return "", nil, nil
}

// collectConfigKeys 递归收集叶子 key（如 log.level）。
func collectConfigKeys[T any](defaultConfig T) []string {
	var keys []string
	walkFields(reflect.TypeOf(defaultConfig), "", func(key string, _ reflect.Type) {
		keys = append(keys, key)
	})

	return keys
}

// walkFields 遍历结构体的叶子字段，嵌套结构体以 "." 拼接 key。
func walkFields(typ reflect.Type, prefix string, fn func(key string, typ reflect.Type)) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isStructType(field.Type) {
			walkFields(field.Type, key, fn)
			continue
		}
		fn(key, field.Type)
	}
}

// generateEnvBindings 根据配置 key 生成环境变量名。
//
// "." 与 "-" 转为 "_" 后大写并加前缀，如 max-depth → DOTENV_MAX_DEPTH。
func generateEnvBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// flag 名称为 key 中的 "." 替换为 "-"，如 log.level → --log-level。
func applyCLIFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	walkFields(typ, prefix, func(key string, fieldType reflect.Type) {
		flag := strings.ReplaceAll(key, ".", "-")
		if !cmd.IsSet(flag) {
			return
		}
		if value, ok := flagValue(cmd, flag, fieldType); ok {
			setByPath(config, key, value)
		}
	})
}

// flagValue 按字段类型读取 flag 值，不支持的类型返回 false。
func flagValue(cmd *cli.Command, flag string, fieldType reflect.Type) (any, bool) {
	if fieldType == reflect.TypeFor[time.Duration]() {
		return cmd.Duration(flag), true
	}

	switch fieldType.Kind() {
	case reflect.String:
		return cmd.String(flag), true
	case reflect.Bool:
		return cmd.Bool(flag), true
	case reflect.Int:
		return cmd.Int(flag), true
	case reflect.Int64:
		return cmd.Int64(flag), true
	case reflect.Uint:
		return cmd.Uint(flag), true
	case reflect.Float64:
		return cmd.Float64(flag), true
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			return cmd.StringSlice(flag), true
		}
	case reflect.Map:
		if fieldType.Key().Kind() == reflect.String && fieldType.Elem().Kind() == reflect.String {
			return cmd.StringMap(flag), true
		}
	default:
	}

	return nil, false
}
