package validate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/stylecfg"
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadSettings(cmd)
	if err != nil {
		return err
	}
	w := cmd.Root().Writer

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{cfg.Declaration.Path}
	}

	failed := 0
	for _, path := range paths {
		doc, err := command.LoadDeclaration(cmd, cfg.Declaration, path)
		if err != nil {
			failed++
			name := path
			if name == "" {
				name = "(default paths)"
			}
			kind := "error"
			if errors.Is(err, stylecfg.ErrMalformedConfig) {
				kind = "malformed"
			}
			slog.DebugContext(ctx, "Declaration invalid", "path", name, "error", err)
			_, _ = fmt.Fprintf(w, "FAIL %s (%s): %v\n", name, kind, err)

			continue
		}

		_, _ = fmt.Fprintf(w, "ok   %s (%d globs, %d overrides, %d extensions, %d plugins)\n",
			doc.Source, len(doc.Content), len(doc.Theme.Overrides), len(doc.Theme.Extend), len(doc.Plugins))
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d declarations invalid", failed, len(paths)), 1)
	}

	return nil
}
