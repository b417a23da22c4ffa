// Package inspect 提供声明查看命令。
package inspect

import (
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
)

// Command 查看命令
var Command = New()

// New 创建查看命令，每次调用返回独立的 flag 实例。
func New() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "加载声明并以规范形式输出",
		ArgsUsage: "[path|-]",
		Action:    action,
		Flags: slices.Concat(
			command.DeclarationFlags(),
			command.OutputFlags(),
			[]cli.Flag{
				&cli.BoolFlag{
					Name:    "resolve",
					Aliases: []string{"r"},
					Value:   command.Defaults.Output.Resolve,
					Usage:   "输出叠加默认主题后的最终主题",
				},
			},
		),
	}
}
