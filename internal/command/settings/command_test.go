package settings_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/settings"
	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/cfgm"
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
		Commands:       []*cli.Command{settings.New()},
	}
	err := root.Run(context.Background(), append([]string{"stylecfg", "settings"}, args...))

	return out.String(), err
}

func TestSettings_Defaults(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)

	assert.Contains(t, out, "# 声明加载配置\ndeclaration:\n")
	assert.Contains(t, out, "  script-timeout: 5s # 脚本声明的求值时限\n")
	assert.Contains(t, out, "  format: 'yaml' # 输出格式 (yaml/json/toml)\n")
}

func TestSettings_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stylecfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("declaration:\n  base-dir: /srv/site\noutput:\n  format: json\n"), 0o600))
	t.Setenv("STYLECFG_DECLARATION_SCRIPT_TIMEOUT", "2s")

	out, err := run(t, "--settings", path, "-f", "toml")
	require.NoError(t, err)

	assert.Contains(t, out, "base-dir: '/srv/site'", "settings file")
	assert.Contains(t, out, "script-timeout: 2s", "environment")
	assert.Contains(t, out, "format: 'toml'", "explicit flag")
}

func TestSettings_OutputIsLoadable(t *testing.T) {
	dst := filepath.Join(t.TempDir(), ".stylecfg.yaml")
	_, err := run(t, "--no-expand", "-o", dst)
	require.NoError(t, err)

	// 生成的设置文件可以被重新加载
	type declaration struct {
		NoExpand bool   `json:"no-expand"`
		Format   string `json:"format"`
	}
	type loaded struct {
		Declaration declaration `json:"declaration"`
	}
	got, err := cfgm.Load(loaded{}, cfgm.WithConfigPaths(dst))
	require.NoError(t, err)
	assert.True(t, got.Declaration.NoExpand)
}

func TestSettings_MissingFile(t *testing.T) {
	_, err := run(t, "--settings", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings file")
}
