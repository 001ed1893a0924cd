package cfgm

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

func configTagName(field reflect.StructField) string {
	if field.PkgPath != "" {
		return ""
	}
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType && typ != timeType
}

// structToMap 将配置结构体转为以 json tag 为 key 的嵌套 map。
func structToMap(cfg any) map[string]any {
	val := reflect.ValueOf(cfg)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return map[string]any{}
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return map[string]any{}
	}

	out := make(map[string]any)
	for i := range val.NumField() {
		field := val.Type().Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}

		fieldVal := val.Field(i)
		if isStructType(field.Type) {
			out[key] = structToMap(fieldVal.Interface())
			continue
		}
		out[key] = fieldVal.Interface()
	}

	return out
}

// parseConfigBytes 按扩展名解析配置：.json、.toml，其余按 YAML 处理。
func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(content, &raw)
	case ".toml":
		err = toml.Unmarshal(content, &raw)
	default:
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}
		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)
				continue
			}
		}

		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// decodeConfigMap 解码到结构体；字符串可转为 time.Duration，
// 逗号分隔的字符串可转为切片（用于环境变量绑定）。
func decodeConfigMap(data map[string]any, out any) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
