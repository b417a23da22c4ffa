// Package command 提供各子命令共享的 flag 与加载逻辑。
package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/config"
	"github.com/lwmacct/251214-go-pkg-stylecfg/internal/output"
	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/cfgm"
	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/stylecfg"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// 工具设置的应用名与环境变量前缀。
const (
	AppName   = "stylecfg"
	EnvPrefix = "STYLECFG_"
)

// DeclarationFlags 返回声明加载相关的 flags，每次调用生成新实例。
//
// 环境变量由 [LoadSettings] 按设置 key 绑定（STYLECFG_DECLARATION_*），flag 只承载显式输入。
func DeclarationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "settings",
			Usage:   "工具设置文件，默认搜索 .stylecfg.yaml、~/.stylecfg.yaml、/etc/stylecfg/config.yaml",
			Sources: cli.EnvVars("STYLECFG_SETTINGS"),
		},
		&cli.StringFlag{
			Name:  "base-dir",
			Value: Defaults.Declaration.BaseDir,
			Usage: "相对路径的解析基准",
		},
		&cli.StringFlag{
			Name:  "input-format",
			Value: Defaults.Declaration.Format,
			Usage: "强制输入格式 (yaml/json/toml/js)，默认按扩展名推断",
		},
		&cli.BoolFlag{
			Name:  "no-expand",
			Value: Defaults.Declaration.NoExpand,
			Usage: "禁用 ${VAR} 展开",
		},
		&cli.StringSliceFlag{
			Name:    "define",
			Aliases: []string{"D"},
			Usage:   "展开变量 KEY=VALUE，可重复",
		},
		&cli.DurationFlag{
			Name:  "script-timeout",
			Value: Defaults.Declaration.ScriptTimeout,
			Usage: "脚本声明的求值时限",
		},
	}
}

// OutputFlags 返回输出相关的 flags，每次调用生成新实例。
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   Defaults.Output.Format,
			Usage:   "输出格式 (yaml/json/toml)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   Defaults.Output.File,
			Usage:   "输出文件，留空写到 stdout",
		},
	}
}

// VerboseFlag 返回调试日志开关，配合 [SetupLogging] 使用。
func VerboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "输出调试日志",
		Sources: cli.EnvVars("STYLECFG_VERBOSE"),
	}
}

// SetupLogging 是根命令的 Before 钩子：--verbose 时把默认 logger 切到 debug 级别。
func SetupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if !cmd.Bool("verbose") {
		return ctx, nil
	}

	var w io.Writer = os.Stderr
	if root := cmd.Root(); root.ErrWriter != nil {
		w = root.ErrWriter
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))

	return ctx, nil
}

// LoadSettings 合并工具设置：默认值 → 设置文件 → STYLECFG_ 环境变量 → 显式设置的 flags。
func LoadSettings(cmd *cli.Command) (config.Config, error) {
	opts := []cfgm.Option{cfgm.WithEnvPrefix(EnvPrefix)}
	if path := cmd.String("settings"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return config.Config{}, fmt.Errorf("settings file: %w", err)
		}
		opts = append(opts, cfgm.WithConfigPaths(path))
	}

	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), AppName, opts...)
	if err != nil {
		return config.Config{}, fmt.Errorf("load settings: %w", err)
	}

	return *cfg, nil
}

// LoadDeclaration 按 path 加载声明：空字符串走默认搜索，"-" 读取 stdin。
func LoadDeclaration(cmd *cli.Command, cfg config.DeclarationConfig, path string) (*stylecfg.Document, error) {
	opts, err := cfg.LoadOptions()
	if err != nil {
		return nil, err
	}

	switch path {
	case "":
		return stylecfg.Load(opts...)
	case "-":
		data, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return stylecfg.LoadBytes("stdin", data, opts...)
	default:
		return stylecfg.LoadFile(path, opts...)
	}
}

// Emit 按输出配置序列化 data 并写出。
func Emit(cmd *cli.Command, cfg config.OutputConfig, data any) error {
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := stylecfg.Encode(&buf, format, data); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	return output.Write(cmd.Root().Writer, cfg.File, buf.Bytes())
}
