package merge_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/merge"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out strings.Builder
	root := &cli.Command{
		Name:           "stylecfg",
		Writer:         &out,
		ErrWriter:      &out,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands:       []*cli.Command{merge.New()},
	}
	err := root.Run(context.Background(), append([]string{"stylecfg", "merge"}, args...))

	return out.String(), err
}

func TestMerge(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	site := filepath.Join(dir, "site.json")
	require.NoError(t, os.WriteFile(base, []byte(`
content: ["./shared/**/*.html"]
theme:
  extend:
    colors:
      rust: "#8B3103"
      ink: "#111"
plugins: ["@tailwindcss/typography"]
`), 0o600))
	require.NoError(t, os.WriteFile(site, []byte(`{
  "content": ["./site/**/*.rs"],
  "theme": {"extend": {"colors": {"rust": "#B7410E"}}},
  "plugins": ["@tailwindcss/forms"]
}`), 0o600))

	out, err := run(t, "-f", "json", base, site)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"content": ["./shared/**/*.html", "./site/**/*.rs"],
		"theme": {"extend": {"colors": {"rust": "#B7410E", "ink": "#111"}}},
		"plugins": ["@tailwindcss/typography", "@tailwindcss/forms"]
	}`, out)
}

func TestMerge_RequiresTwoArgs(t *testing.T) {
	_, err := run(t, "only.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two")
}

func TestMerge_StdinOnlyOnce(t *testing.T) {
	_, err := run(t, "-", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin (-) at most once")
}
