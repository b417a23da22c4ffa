package stylecfg

// DefaultTheme 返回内置默认主题的新副本。
//
// 只包含声明中最常被引用或扩展的分类：fontFamily、colors 的基础色与 screens。
// 完整的默认 token 集由外部 CSS 生成工具维护。
func DefaultTheme() Categories {
	return Categories{
		"fontFamily": {
			"sans": Stack(
				"ui-sans-serif", "system-ui", "sans-serif",
				`"Apple Color Emoji"`, `"Segoe UI Emoji"`, `"Segoe UI Symbol"`, `"Noto Color Emoji"`,
			),
			"serif": Stack("ui-serif", "Georgia", "Cambria", `"Times New Roman"`, "Times", "serif"),
			"mono": Stack(
				"ui-monospace", "SFMono-Regular", "Menlo", "Monaco", "Consolas",
				`"Liberation Mono"`, `"Courier New"`, "monospace",
			),
		},
		"colors": {
			"inherit":     String("inherit"),
			"current":     String("currentColor"),
			"transparent": String("transparent"),
			"black":       String("#000"),
			"white":       String("#fff"),
		},
		"screens": {
			"sm":  String("640px"),
			"md":  String("768px"),
			"lg":  String("1024px"),
			"xl":  String("1280px"),
			"2xl": String("1536px"),
		},
	}
}

// jsValue 转为脚本可用的纯数据形态：{category: {token: string | [string]}}。
func (c Categories) jsValue() map[string]any {
	out := make(map[string]any, len(c))
	for name, tokens := range c {
		out[name] = tokens.toMap()
	}

	return out
}

func (t Tokens) toMap() map[string]any {
	out := make(map[string]any, len(t))
	for name, v := range t {
		out[name] = v.toAny()
	}

	return out
}
