package stylecfg

import (
	"maps"
	"slices"
	"strings"
)

// Value 主题 token 的值。
//
// 可以是单个字符串（如颜色 "#B7410E"），也可以是有序的字符串栈（如字体栈
// ["JetBrains Mono", "monospace"]）。零值为空字符串。
type Value struct {
	items []string
	stack bool
}

// String 创建单值 token。
func String(s string) Value {
	return Value{items: []string{s}}
}

// Stack 创建有序栈 token，即使只有一个元素也保持列表形态。
func Stack(items ...string) Value {
	return Value{items: slices.Clone(items), stack: true}
}

// IsStack 报告该值是否为列表形态。
func (v Value) IsStack() bool { return v.stack }

// Items 返回值的各个元素（副本）。
func (v Value) Items() []string { return slices.Clone(v.items) }

// String 返回值的文本形式，栈以 ", " 连接。
func (v Value) String() string { return strings.Join(v.items, ", ") }

// Equal 比较两个值是否相同（供 go-cmp 使用）。
func (v Value) Equal(o Value) bool {
	return v.stack == o.stack && slices.Equal(v.items, o.items)
}

func (v Value) toAny() any {
	if !v.stack {
		return v.String()
	}
	out := make([]any, len(v.items))
	for i, s := range v.items {
		out[i] = s
	}

	return out
}

// Tokens token 名称到值的映射，名称在同一分类内唯一。
type Tokens map[string]Value

// Categories 分类名（如 "colors"、"fontFamily"）到 token 映射。
type Categories map[string]Tokens

// Clone 深拷贝分类映射。
func (c Categories) Clone() Categories {
	if c == nil {
		return nil
	}
	out := make(Categories, len(c))
	for name, tokens := range c {
		out[name] = maps.Clone(tokens)
	}

	return out
}

// Names 返回排序后的分类名。
func (c Categories) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// Theme 主题声明。
//
// Overrides 对应 theme 下除 extend 以外的分类，会整体替换默认分类；
// Extend 对应 theme.extend，按 token 叠加到默认值之上。
type Theme struct {
	Overrides Categories
	Extend    Categories
}

// Document 已加载的样式配置声明。
//
// 加载后视为不可变：包内所有操作都返回新值，不修改入参。
type Document struct {
	// Content 内容扫描 glob，顺序仅影响扫描性能。
	Content []string
	// ContentRelative 为 true 时 glob 相对声明文件解析（content.relative）。
	ContentRelative bool
	Theme           Theme
	// Plugins 插件标识，如 "@tailwindcss/typography"。
	Plugins   []string
	Prefix    string
	Important bool
	DarkMode  string
	Safelist  []string
	// Source 声明来源（文件路径或调用方给出的名称），不参与序列化。
	Source string
}

// Extensions 返回主题扩展映射（theme.extend）。
func (d *Document) Extensions() Categories {
	return d.Theme.Extend
}

// Resolve 计算叠加默认值后的最终主题。
//
// 顺序：defaults → 分类覆盖（整体替换）→ 扩展（[MergeExtend]）。
func (d *Document) Resolve(defaults Categories) Categories {
	out := defaults.Clone()
	if out == nil {
		out = make(Categories)
	}
	for name, tokens := range d.Theme.Overrides {
		out[name] = maps.Clone(tokens)
	}

	return MergeExtend(out, d.Theme.Extend)
}

// Token 在最终主题中查找 token，defaults 为 nil 时只看声明本身。
func (d *Document) Token(defaults Categories, category, name string) (Value, bool) {
	v, ok := d.Resolve(defaults)[category][name]

	return v, ok
}
