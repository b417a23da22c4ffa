package stylecfg

import (
	"maps"
	"slices"
)

// MergeExtend 将 override 的各分类 token 叠加到 base 上，返回新的映射。
//
// 同一分类内 key 冲突时 override 胜出；base 独有的分类与 token 保留。
// 不修改任何入参，override 为空时结果与 base 相等；值为 nil 的分类视同空分类。
func MergeExtend(base, override Categories) Categories {
	out := base.Clone()
	if out == nil {
		out = make(Categories, len(override))
	}

	for name, tokens := range override {
		dst := out[name]
		if dst == nil {
			dst = make(Tokens, len(tokens))
			out[name] = dst
		}
		maps.Copy(dst, tokens)
	}

	return out
}

// Layer 以 preset 方式叠加两个声明，返回新的 [Document]。
//
//   - content、plugins、safelist 取并集（保持先 base 后 override 的顺序，去重）
//   - theme 覆盖分类按分类整体替换，扩展按 [MergeExtend] 合并
//   - prefix、darkMode 在 override 非空时取 override；important 任一为 true 即为 true
//   - content.relative 取 override 的值（override 未声明 content 时保留 base）
func Layer(base, override *Document) *Document {
	out := &Document{
		Content:         union(base.Content, override.Content),
		ContentRelative: base.ContentRelative,
		Plugins:         union(base.Plugins, override.Plugins),
		Safelist:        union(base.Safelist, override.Safelist),
		Prefix:          base.Prefix,
		Important:       base.Important || override.Important,
		DarkMode:        base.DarkMode,
		Source:          override.Source,
	}
	if len(override.Content) > 0 {
		out.ContentRelative = override.ContentRelative
	}
	if override.Prefix != "" {
		out.Prefix = override.Prefix
	}
	if override.DarkMode != "" {
		out.DarkMode = override.DarkMode
	}

	out.Theme.Overrides = base.Theme.Overrides.Clone()
	for name, tokens := range override.Theme.Overrides {
		if out.Theme.Overrides == nil {
			out.Theme.Overrides = make(Categories)
		}
		out.Theme.Overrides[name] = maps.Clone(tokens)
	}
	if base.Theme.Extend != nil || override.Theme.Extend != nil {
		out.Theme.Extend = MergeExtend(base.Theme.Extend, override.Theme.Extend)
	}

	return out
}

func union(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	for _, s := range slices.Concat(a, b) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}

	return out
}
