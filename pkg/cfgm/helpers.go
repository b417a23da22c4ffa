package cfgm

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

var durationType = reflect.TypeFor[time.Duration]()

func configTagName(field reflect.StructField) string {
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

	return typ.Kind() == reflect.Struct && typ != durationType
}

// structToMap 把默认值转为以 json tag 为 key 的映射，作为合并的最底层。
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
	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" || field.PkgPath != "" {
			continue
		}

		fieldVal := val.Field(i)
		if isStructType(field.Type) {
			out[key] = structToMap(fieldVal.Interface())
			continue
		}
		if fieldVal.Kind() == reflect.Slice && fieldVal.IsNil() {
			out[key] = nil
			continue
		}
		out[key] = fieldVal.Interface()
	}

	return out
}

// parseConfigBytes 按扩展名解析设置文件：.json / .toml，其余按 YAML。
func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(content, &raw)
	case ".toml":
		var doc map[string]any
		err = toml.Unmarshal(content, &doc)
		raw = doc
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
		return nil, errors.New("settings root must be a mapping")
	}

	return configMap, nil
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalizeMapKeys(value)
		}

		return typed
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

// decodeConfigMap 宽松解码：环境变量的 "true"、"5s"、"a,b" 转为对应字段类型。
func decodeConfigMap(data map[string]any, out any) error {
	md := &mapstructure.Metadata{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Metadata:         md,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(data); err != nil {
		return err
	}
	for _, key := range md.Unused {
		slog.Warn("Ignoring unknown settings key", "key", key)
	}

	return nil
}
