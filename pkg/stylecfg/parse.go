package stylecfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// Format 声明文件格式。
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatTOML   Format = "toml"
	FormatScript Format = "js"
)

// Formats 返回可序列化输出的格式（脚本格式只读）。
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatTOML}
}

// FormatFromPath 根据扩展名推断格式，未知扩展名按 YAML 处理。
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".js", ".cjs", ".mjs":
		return FormatScript
	default:
		return FormatYAML
	}
}

// ParseFormat 将用户输入（如 CLI flag）转为 Format。
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON, FormatTOML, FormatScript:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "javascript", "cjs", "mjs":
		return FormatScript, nil
	}

	return "", fmt.Errorf("unknown format %q", s)
}

// Parse 按 name 的扩展名解析声明内容，返回 key 统一为字符串的映射。
//
// 语法错误包装为 [*MalformedError]；空文档返回空映射。
// 脚本声明按 [DefaultScriptTimeout] 限时求值。
func Parse(name string, content []byte) (map[string]any, error) {
	return parseAs(FormatFromPath(name), name, content, DefaultScriptTimeout)
}

func parseAs(format Format, name string, content []byte, timeout time.Duration) (map[string]any, error) {
	var raw any
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(content, &raw)
	case FormatTOML:
		var doc map[string]any
		err = toml.Unmarshal(content, &doc)
		raw = doc
	case FormatScript:
		raw, err = evalScript(name, string(content), timeout)
	default:
		err = yamlv3.Unmarshal(content, &raw)
	}
	if errors.Is(err, ErrScriptTimeout) {
		return nil, err
	}
	if err != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("parse %s %s", format, name), Err: err}
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return map[string]any{}, nil
	}
	decl, ok := normalized.(map[string]any)
	if !ok {
		return nil, malformed("", "declaration root must be a mapping, got %s", kindOf(normalized))
	}

	return decl, nil
}

// normalizeMapKeys 把 YAML 的 map[any]any（如数字 key 500）统一为 map[string]any。
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
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = normalizeMapKeys(typed[i])
		}

		return out
	default:
		return val
	}
}
