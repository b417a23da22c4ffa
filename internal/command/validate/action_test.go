package validate_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/validate"
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
		Commands:       []*cli.Command{validate.New()},
	}
	err := root.Run(context.Background(), append([]string{"stylecfg", "validate"}, args...))

	return out.String(), err
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte("content: [\"./src/**/*.rs\"]\nplugins: [\"@tailwindcss/typography\"]\n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte(`{"theme": {"extend": {"colors": ["#fff"]}}}`), 0o600))

	out, err := run(t, good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   "+good+" (1 globs, 0 overrides, 0 extensions, 1 plugins)")

	out, err = run(t, good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 declarations invalid")

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, out, "FAIL "+bad+" (malformed)")
}

func TestValidate_DefaultSearch(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "--base-dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL (default paths) (error)")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tailwind.config.toml"), []byte("content = [\"./**/*.html\"]\n"), 0o600))
	out, err = run(t, "--base-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   "+filepath.Join(dir, "tailwind.config.toml"))
}
