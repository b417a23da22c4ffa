package merge

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/stylecfg"
)

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 2 {
		return errors.New("merge requires at least two declarations")
	}
	stdin := 0
	for _, path := range cmd.Args().Slice() {
		if path == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("merge reads stdin (-) at most once")
	}
	cfg, err := command.LoadSettings(cmd)
	if err != nil {
		return err
	}

	var merged *stylecfg.Document
	for _, path := range cmd.Args().Slice() {
		doc, err := command.LoadDeclaration(cmd, cfg.Declaration, path)
		if err != nil {
			return err
		}
		if merged == nil {
			merged = doc
			continue
		}
		merged = stylecfg.Layer(merged, doc)
		slog.DebugContext(ctx, "Layered declaration", "source", doc.Source)
	}

	return command.Emit(cmd, cfg.Output, merged.ToMap())
}
