// Package settings 提供工具设置查看命令。
package settings

import (
	"context"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/output"
	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/cfgm"
)

// Command 设置命令
var Command = New()

// New 创建设置命令，每次调用返回独立的 flag 实例。
func New() *cli.Command {
	return &cli.Command{
		Name:   "settings",
		Usage:  "以带注释的 YAML 输出当前生效的工具设置，可另存为 .stylecfg.yaml",
		Action: action,
		Flags:  slices.Concat(command.DeclarationFlags(), command.OutputFlags()),
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadSettings(cmd)
	if err != nil {
		return err
	}

	return output.Write(cmd.Root().Writer, cfg.Output.File, cfgm.ExampleYAML(cfg))
}
