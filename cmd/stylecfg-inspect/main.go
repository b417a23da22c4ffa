package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
	app "github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/inspect"
)

// newApp 返回独立运行的 inspect 命令，附带 --verbose 开关。
func newApp() *cli.Command {
	cmd := app.New()
	cmd.Name = "stylecfg-inspect"
	cmd.Flags = append(cmd.Flags, command.VerboseFlag())
	cmd.Before = command.SetupLogging

	return cmd
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
