package stylecfg

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// rawDeclaration 顶层字段的宽松形态，结构校验在 FromMap 中完成。
type rawDeclaration struct {
	Content   any      `json:"content"`
	Theme     any      `json:"theme"`
	Plugins   any      `json:"plugins"`
	Prefix    string   `json:"prefix"`
	Important bool     `json:"important"`
	DarkMode  any      `json:"darkMode"`
	Safelist  []string `json:"safelist"`
}

// requiredFields 至少出现其一，否则视为缺少必需结构。
var requiredFields = []string{"content", "theme", "plugins"}

// FromMap 将已解析的声明映射转为 [Document]。
//
// 结构不符时返回 [*MalformedError]（匹配 [ErrMalformedConfig]）：
//   - 根节点不含 content / theme / plugins 中的任何一个，或其中之一为 null
//   - content 既不是 glob 列表也不是 {files, relative}
//   - theme 分类的值不是以字符串为 key 的映射
//   - token 值不是字符串、数字、布尔或字符串列表
//   - 同一分类展平后出现重名 token
func FromMap(decl map[string]any) (*Document, error) {
	if !slices.ContainsFunc(requiredFields, func(k string) bool { _, ok := decl[k]; return ok }) {
		return nil, malformed("", "declaration must define at least one of content, theme, plugins")
	}
	for _, key := range requiredFields {
		if v, ok := decl[key]; ok && v == nil {
			return nil, malformed(key, "must not be null")
		}
	}

	var raw rawDeclaration
	md := &mapstructure.Metadata{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: md,
		Result:   &raw,
		TagName:  "json",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(decl); err != nil {
		return nil, &MalformedError{Reason: "invalid top-level field", Err: err}
	}
	for _, key := range md.Unused {
		slog.Debug("Ignoring unrecognized declaration field", "field", key)
	}

	doc := &Document{
		Prefix:    raw.Prefix,
		Important: raw.Important,
		Safelist:  raw.Safelist,
	}

	if raw.Content != nil {
		if doc.Content, doc.ContentRelative, err = decodeContent(raw.Content); err != nil {
			return nil, err
		}
	}
	if raw.Theme != nil {
		if doc.Theme, err = decodeTheme(raw.Theme); err != nil {
			return nil, err
		}
	}
	if raw.Plugins != nil {
		if doc.Plugins, err = decodeStrings("plugins", raw.Plugins); err != nil {
			return nil, err
		}
	}
	if raw.DarkMode != nil {
		if doc.DarkMode, err = decodeDarkMode(raw.DarkMode); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func decodeContent(raw any) ([]string, bool, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		globs, err := decodeStrings("content", raw)
		return globs, false, err
	}

	files, ok := obj["files"]
	if !ok {
		return nil, false, malformed("content", "object form requires files")
	}
	globs, err := decodeStrings("content.files", files)
	if err != nil {
		return nil, false, err
	}

	relative := false
	if r, ok := obj["relative"]; ok {
		if relative, ok = r.(bool); !ok {
			return nil, false, malformed("content.relative", "expected bool, got %s", kindOf(r))
		}
	}
	for key := range obj {
		if key != "files" && key != "relative" {
			slog.Debug("Ignoring unsupported content option", "option", key)
		}
	}

	return globs, relative, nil
}

func decodeTheme(raw any) (Theme, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Theme{}, malformed("theme", "expected mapping, got %s", kindOf(raw))
	}

	// 已声明的 theme 即使为空也保留非 nil 的 Overrides，ToMap 据此输出 theme: {}。
	theme := Theme{Overrides: make(Categories)}
	for _, name := range slices.Sorted(maps.Keys(obj)) {
		if name == "extend" {
			ext, err := decodeCategories("theme.extend", obj[name])
			if err != nil {
				return Theme{}, err
			}
			theme.Extend = ext
			continue
		}

		tokens, err := decodeTokens(joinPath("theme", name), obj[name])
		if err != nil {
			return Theme{}, err
		}
		theme.Overrides[name] = tokens
	}

	return theme, nil
}

func decodeCategories(path string, raw any) (Categories, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, malformed(path, "expected mapping of categories, got %s", kindOf(raw))
	}

	out := make(Categories, len(obj))
	for name, value := range obj {
		tokens, err := decodeTokens(joinPath(path, name), value)
		if err != nil {
			return nil, err
		}
		out[name] = tokens
	}

	return out, nil
}

func decodeTokens(path string, raw any) (Tokens, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, malformed(path, "category must be a string-keyed mapping, got %s", kindOf(raw))
	}

	out := make(Tokens, len(obj))
	if err := flattenTokens(path, "", obj, out); err != nil {
		return nil, err
	}

	return out, nil
}

// flattenTokens 展开嵌套 token：blue.500 → blue-500，blue.DEFAULT → blue。
func flattenTokens(path, prefix string, obj map[string]any, out Tokens) error {
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		name := key
		if prefix != "" {
			name = prefix + "-" + key
			if key == "DEFAULT" {
				name = prefix
			}
		}

		fieldPath := joinPath(path, key)
		if nested, ok := obj[key].(map[string]any); ok {
			if err := flattenTokens(fieldPath, name, nested, out); err != nil {
				return err
			}
			continue
		}

		value, err := decodeValue(fieldPath, obj[key])
		if err != nil {
			return err
		}
		if _, dup := out[name]; dup {
			return malformed(path, "duplicate token %q", name)
		}
		out[name] = value
	}

	return nil
}

func decodeValue(path string, raw any) (Value, error) {
	switch v := raw.(type) {
	case []any, []string:
		items, err := decodeStrings(path, v)
		if err != nil {
			return Value{}, err
		}
		return Stack(items...), nil
	case nil:
		return Value{}, malformed(path, "token value is null")
	default:
		s, ok := scalarString(v)
		if !ok {
			return Value{}, malformed(path, "unsupported token value %s", kindOf(raw))
		}
		return String(s), nil
	}
}

func scalarString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	default:
		return "", false
	}
}

func decodeStrings(path string, raw any) ([]string, error) {
	var items []any
	switch v := raw.(type) {
	case []string:
		if slices.Contains(v, "") {
			return nil, malformed(path, "empty entry")
		}
		return slices.Clone(v), nil
	case []any:
		items = v
	default:
		return nil, malformed(path, "expected list of strings, got %s", kindOf(raw))
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, malformed(fmt.Sprintf("%s[%d]", path, i), "expected string, got %s", kindOf(item))
		}
		if s == "" {
			return nil, malformed(fmt.Sprintf("%s[%d]", path, i), "empty entry")
		}
		out = append(out, s)
	}

	return out, nil
}

// decodeDarkMode 接受 "class" 或 ["class", ".dark"] 形式，只保留模式名。
func decodeDarkMode(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []any:
		if len(v) > 0 {
			if mode, ok := v[0].(string); ok {
				return mode, nil
			}
		}
	case bool:
		if !v {
			return "", nil
		}
	}

	return "", malformed("darkMode", "expected string or [mode, selector], got %s", kindOf(raw))
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "mapping"
	case []any, []string:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, uint64, float32, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
