package stylecfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/stylecfg"
)

func TestFormatFromPath(t *testing.T) {
	tests := map[string]stylecfg.Format{
		"tailwind.config.js":   stylecfg.FormatScript,
		"tailwind.config.CJS":  stylecfg.FormatScript,
		"tailwind.config.mjs":  stylecfg.FormatScript,
		"tailwind.config.json": stylecfg.FormatJSON,
		"tailwind.config.toml": stylecfg.FormatTOML,
		"tailwind.config.yml":  stylecfg.FormatYAML,
		"stdin":                stylecfg.FormatYAML,
	}
	for path, want := range tests {
		assert.Equal(t, want, stylecfg.FormatFromPath(path), path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := stylecfg.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, stylecfg.FormatYAML, f)

	f, err = stylecfg.ParseFormat("toml")
	require.NoError(t, err)
	assert.Equal(t, stylecfg.FormatTOML, f)

	_, err = stylecfg.ParseFormat("xml")
	require.Error(t, err)
}

func TestParse_YAMLNumericKeys(t *testing.T) {
	content := []byte(`
theme:
  extend:
    colors:
      brand:
        500: "#C2410C"
        900: "#7C2D12"
`)
	decl, err := stylecfg.Parse("tailwind.config.yaml", content)
	require.NoError(t, err)

	doc, err := stylecfg.FromMap(decl)
	require.NoError(t, err)
	assert.Equal(t, stylecfg.Tokens{
		"brand-500": stylecfg.String("#C2410C"),
		"brand-900": stylecfg.String("#7C2D12"),
	}, doc.Extensions()["colors"])
}

func TestParse_TOML(t *testing.T) {
	content := []byte(`
content = ["./src/**/*.rs"]
plugins = ["@tailwindcss/typography"]

[theme.fontFamily]
jetbrains = ["JetBrains Mono"]

[theme.extend.colors]
rust = "#B7410E"
`)
	decl, err := stylecfg.Parse("tailwind.config.toml", content)
	require.NoError(t, err)

	doc, err := stylecfg.FromMap(decl)
	require.NoError(t, err)
	assert.Equal(t, []string{"./src/**/*.rs"}, doc.Content)
	assert.Equal(t, []string{"@tailwindcss/typography"}, doc.Plugins)
	assert.Equal(t, "#B7410E", doc.Extensions()["colors"]["rust"].String())
	assert.Equal(t, []string{"JetBrains Mono"}, doc.Theme.Overrides["fontFamily"]["jetbrains"].Items())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{name: "invalid json", path: "a.json", content: `{"content": [`},
		{name: "invalid yaml", path: "a.yaml", content: "content: [\n"},
		{name: "invalid toml", path: "a.toml", content: "content = ["},
		{name: "yaml root is a list", path: "a.yaml", content: "- ./src/**/*.html\n"},
		{name: "json root is a string", path: "a.json", content: `"content"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stylecfg.Parse(tt.path, []byte(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, stylecfg.ErrMalformedConfig)
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	decl, err := stylecfg.Parse("a.yaml", nil)
	require.NoError(t, err)
	assert.Empty(t, decl)
}
