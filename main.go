package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/inspect"
	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/merge"
	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/schema"
	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/settings"
	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command/validate"
)

// version 由构建时 -ldflags "-X main.version=..." 注入。
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    command.AppName,
		Usage:   "样式配置声明加载工具",
		Version: version,
		Flags:   []cli.Flag{command.VerboseFlag()},
		Before:  command.SetupLogging,
		Commands: []*cli.Command{
			inspect.Command,
			validate.Command,
			merge.Command,
			schema.Command,
			settings.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
