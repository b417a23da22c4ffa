package stylecfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// ToMap 返回声明形态的映射，可直接交给 [FromMap] 重新加载。
//
// 嵌套 token 以展平后的名称输出（blue-500），字体栈保持列表形态。
func (d *Document) ToMap() map[string]any {
	out := make(map[string]any)

	if d.Content != nil {
		globs := stringsToAny(d.Content)
		if d.ContentRelative {
			out["content"] = map[string]any{"files": globs, "relative": true}
		} else {
			out["content"] = globs
		}
	}

	if d.Theme.Overrides != nil || d.Theme.Extend != nil {
		theme := d.Theme.Overrides.jsValue()
		if d.Theme.Extend != nil {
			theme["extend"] = d.Theme.Extend.jsValue()
		}
		out["theme"] = theme
	}

	if d.Plugins != nil {
		out["plugins"] = stringsToAny(d.Plugins)
	}
	if d.Prefix != "" {
		out["prefix"] = d.Prefix
	}
	if d.Important {
		out["important"] = true
	}
	if d.DarkMode != "" {
		out["darkMode"] = d.DarkMode
	}
	if d.Safelist != nil {
		out["safelist"] = stringsToAny(d.Safelist)
	}

	return out
}

// Encode 以指定格式写出 data（通常为 [Document.ToMap] 或 [Categories] 的映射）。
func Encode(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(data)
	case FormatYAML:
		enc := yamlv3.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("encode: unsupported output format %q", format)
	}
}

// Marshal 是 [Encode] 的字节版本，序列化整个声明。
func Marshal(format Format, doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, doc.ToMap()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ResolvedMap 返回最终主题的纯数据形态，用于输出。
func ResolvedMap(c Categories) map[string]any {
	return c.jsValue()
}

func stringsToAny(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}

	return out
}
