// Package schema 提供声明 JSON Schema 输出命令。
package schema

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/output"
	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/stylecfg"
)

// Command schema 命令
var Command = New()

// New 创建 schema 命令，每次调用返回独立的 flag 实例。
func New() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "输出声明文件的 JSON Schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出文件，留空写到 stdout",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			data, err := stylecfg.Schema()
			if err != nil {
				return err
			}

			return output.Write(cmd.Root().Writer, cmd.String("output"), append(data, '\n'))
		},
	}
}
