package command_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/config"
)

func newRoot(out *strings.Builder, stdin string, action cli.ActionFunc, flags ...cli.Flag) *cli.Command {
	return &cli.Command{
		Name:   "stylecfg",
		Writer: out,
		Reader: strings.NewReader(stdin),
		Flags:  flags,
		Action: action,
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out strings.Builder
	var got config.Config
	root := newRoot(&out, "", func(_ context.Context, cmd *cli.Command) (err error) {
		got, err = command.LoadSettings(cmd)
		return err
	}, append(command.DeclarationFlags(), command.OutputFlags()...)...)

	err := root.Run(context.Background(), []string{"stylecfg", "-f", "json", "--no-expand", "-D", "A=1", "-D", "B=2", "--base-dir", "/tmp"})
	require.NoError(t, err)

	assert.Equal(t, "json", got.Output.Format)
	assert.Empty(t, got.Output.File)
	assert.True(t, got.Declaration.NoExpand)
	assert.Equal(t, []string{"A=1", "B=2"}, got.Declaration.Defines)
	assert.Equal(t, "/tmp", got.Declaration.BaseDir)
	assert.Equal(t, command.Defaults.Declaration.ScriptTimeout, got.Declaration.ScriptTimeout)
	assert.False(t, got.Output.Resolve)
}

func TestLoadSettings_Layers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STYLECFG_OUTPUT_FORMAT", "toml")
	t.Setenv("STYLECFG_DECLARATION_DEFINE", "BRAND=#B7410E")

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
declaration:
  path: site/tailwind.config.js
  script-timeout: 1s
output:
  format: json
  file: theme.json
`), 0o600))

	load := func(args ...string) config.Config {
		t.Helper()

		var out strings.Builder
		var got config.Config
		root := newRoot(&out, "", func(_ context.Context, cmd *cli.Command) (err error) {
			got, err = command.LoadSettings(cmd)
			return err
		}, append(command.DeclarationFlags(), command.OutputFlags()...)...)
		require.NoError(t, root.Run(context.Background(), append([]string{"stylecfg", "--settings", path}, args...)))

		return got
	}

	got := load()
	assert.Equal(t, "site/tailwind.config.js", got.Declaration.Path)
	assert.Equal(t, time.Second, got.Declaration.ScriptTimeout)
	assert.Equal(t, "theme.json", got.Output.File)
	assert.Equal(t, "toml", got.Output.Format, "environment overrides the settings file")
	assert.Equal(t, []string{"BRAND=#B7410E"}, got.Declaration.Defines)

	got = load("-f", "yaml", "--script-timeout", "3s")
	assert.Equal(t, "yaml", got.Output.Format, "explicit flag overrides environment")
	assert.Equal(t, 3*time.Second, got.Declaration.ScriptTimeout)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	var out strings.Builder
	root := newRoot(&out, "", func(_ context.Context, cmd *cli.Command) error {
		_, err := command.LoadSettings(cmd)
		return err
	}, command.DeclarationFlags()...)

	err := root.Run(context.Background(), []string{"stylecfg", "--settings", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetupLogging(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	run := func(args ...string) string {
		t.Helper()

		var out, errOut strings.Builder
		root := newRoot(&out, "", func(ctx context.Context, _ *cli.Command) error {
			slog.DebugContext(ctx, "Debug line")
			return nil
		}, command.VerboseFlag())
		root.ErrWriter = &errOut
		root.Before = command.SetupLogging
		require.NoError(t, root.Run(context.Background(), append([]string{"stylecfg"}, args...)))

		return errOut.String()
	}

	assert.NotContains(t, run(), "Debug line")
	assert.Contains(t, run("-v"), "level=DEBUG msg=\"Debug line\"")
}

func TestLoadDeclarationAndEmit_Stdin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out strings.Builder
	root := newRoot(&out, `{"content": ["./src/**/*.rs"], "theme": {"extend": {"colors": {"rust": "#B7410E"}}}}`,
		func(_ context.Context, cmd *cli.Command) error {
			cfg, err := command.LoadSettings(cmd)
			if err != nil {
				return err
			}
			doc, err := command.LoadDeclaration(cmd, cfg.Declaration, "-")
			if err != nil {
				return err
			}
			return command.Emit(cmd, cfg.Output, doc.ToMap())
		}, append(command.DeclarationFlags(), command.OutputFlags()...)...)

	require.NoError(t, root.Run(context.Background(), []string{"stylecfg", "--input-format", "json", "-f", "json"}))
	assert.JSONEq(t, `{"content": ["./src/**/*.rs"], "theme": {"extend": {"colors": {"rust": "#B7410E"}}}}`, out.String())
}
