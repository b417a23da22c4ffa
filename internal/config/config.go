// Package config 提供命令行工具自身的配置。
//
// 配置来源优先级 (从低到高)，由 pkg/cfgm 合并：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 设置文件 - .stylecfg.yaml、~/.stylecfg.yaml、/etc/stylecfg/config.yaml 或 --settings
//  3. 环境变量 - STYLECFG_ 前缀，如 STYLECFG_OUTPUT_FORMAT
//  4. CLI flags - 仅显式设置的 flag 生效，flag 名见字段的 flag tag
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/stylecfg"
)

// Config 工具配置。
type Config struct {
	Declaration DeclarationConfig `json:"declaration" desc:"声明加载配置"`
	Output      OutputConfig      `json:"output" desc:"输出配置"`
}

// DeclarationConfig 声明加载配置。
type DeclarationConfig struct {
	Path          string        `json:"path" flag:"-" desc:"未给出路径参数时使用的声明文件，留空按默认路径搜索，- 表示 stdin"`
	BaseDir       string        `json:"base-dir" flag:"base-dir" desc:"相对路径的解析基准"`
	Format        string        `json:"format" flag:"input-format" desc:"强制输入格式 (yaml/json/toml/js)"`
	NoExpand      bool          `json:"no-expand" flag:"no-expand" desc:"禁用变量展开"`
	Defines       []string      `json:"define" flag:"define" desc:"展开变量 KEY=VALUE"`
	ScriptTimeout time.Duration `json:"script-timeout" flag:"script-timeout" desc:"脚本声明的求值时限"`
}

// OutputConfig 输出配置。
type OutputConfig struct {
	Format  string `json:"format" flag:"format" desc:"输出格式 (yaml/json/toml)"`
	File    string `json:"file" flag:"output" desc:"输出文件，留空写到 stdout"`
	Resolve bool   `json:"resolve" flag:"resolve" desc:"输出叠加默认主题后的最终主题"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Declaration: DeclarationConfig{
			ScriptTimeout: stylecfg.DefaultScriptTimeout,
		},
		Output: OutputConfig{
			Format: string(stylecfg.FormatYAML),
		},
	}
}

// LoadOptions 把声明配置转换为 stylecfg 加载选项。
func (c DeclarationConfig) LoadOptions() ([]stylecfg.Option, error) {
	var opts []stylecfg.Option

	if c.BaseDir != "" {
		opts = append(opts, stylecfg.WithBaseDir(c.BaseDir))
	}
	if c.ScriptTimeout > 0 {
		opts = append(opts, stylecfg.WithScriptTimeout(c.ScriptTimeout))
	}
	if c.NoExpand {
		opts = append(opts, stylecfg.WithoutTemplateExpansion())
	}
	if c.Format != "" {
		f, err := stylecfg.ParseFormat(c.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, stylecfg.WithFormat(f))
	}

	if len(c.Defines) > 0 {
		vars := make(map[string]string, len(c.Defines))
		for _, def := range c.Defines {
			key, value, ok := strings.Cut(def, "=")
			if !ok || key == "" {
				return nil, fmt.Errorf("invalid define %q, expected KEY=VALUE", def)
			}
			vars[key] = value
		}
		opts = append(opts, stylecfg.WithVars(vars))
	}

	return opts, nil
}

// OutputFormat 解析输出格式，脚本格式不可作为输出。
func (c OutputConfig) OutputFormat() (stylecfg.Format, error) {
	f, err := stylecfg.ParseFormat(c.Format)
	if err != nil {
		return "", err
	}
	if f == stylecfg.FormatScript {
		return "", fmt.Errorf("format %q is input only", c.Format)
	}

	return f, nil
}
