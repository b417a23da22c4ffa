// Package merge 提供声明叠加命令。
package merge

import (
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
)

// Command 叠加命令
var Command = New()

// New 创建叠加命令，每次调用返回独立的 flag 实例。
func New() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "以 preset 方式叠加多个声明，后者覆盖前者",
		ArgsUsage: "<base> <override> [override...]",
		Action:    action,
		Flags:     slices.Concat(command.DeclarationFlags(), command.OutputFlags()),
	}
}
