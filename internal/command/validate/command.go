// Package validate 提供声明校验命令。
package validate

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/command"
)

// Command 校验命令
var Command = New()

// New 创建校验命令，每次调用返回独立的 flag 实例。
func New() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "校验一个或多个声明文件，未给出路径时按默认路径搜索",
		ArgsUsage: "[path...]",
		Action:    action,
		Flags:     command.DeclarationFlags(),
	}
}
