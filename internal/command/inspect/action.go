package inspect

import (
	"context"
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

	path := cmd.Args().First()
	if path == "" {
		path = cfg.Declaration.Path
	}
	doc, err := command.LoadDeclaration(cmd, cfg.Declaration, path)
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "Inspecting declaration", "source", doc.Source, "resolve", cfg.Output.Resolve)

	if cfg.Output.Resolve {
		return command.Emit(cmd, cfg.Output, stylecfg.ResolvedMap(doc.Resolve(stylecfg.DefaultTheme())))
	}

	return command.Emit(cmd, cfg.Output, doc.ToMap())
}
