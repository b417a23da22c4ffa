package stylecfg

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// declarationSchema 仅用于生成 JSON Schema，描述静态声明的形态。
type declarationSchema struct {
	Content   []string                  `json:"content,omitempty" jsonschema:"description=Globs of source files scanned for class usages. The object form {files: [...] relative: bool} is also accepted."`
	Theme     map[string]map[string]any `json:"theme,omitempty" jsonschema:"description=Category overrides keyed by category name. The extend key holds additive categories."`
	Plugins   []string                  `json:"plugins,omitempty" jsonschema:"description=Plugin identifiers such as @tailwindcss/typography."`
	Prefix    string                    `json:"prefix,omitempty" jsonschema:"description=Prefix added to every generated utility."`
	Important bool                      `json:"important,omitempty"`
	DarkMode  string                    `json:"darkMode,omitempty" jsonschema:"enum=media,enum=class,enum=selector"`
	Safelist  []string                  `json:"safelist,omitempty"`
}

// Schema 返回声明文件的 JSON Schema（缩进格式）。
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&declarationSchema{})
	s.Title = "Style configuration declaration"
	s.Description = "Content globs, theme overrides and extensions, and plugins consumed by a utility CSS generator."

	return json.MarshalIndent(s, "", "  ")
}
