package cfgm

import "github.com/urfave/cli/v3"

// options 设置加载选项。
type options struct {
	appName             string // 应用名称，用于生成默认设置路径
	cmd                 *cli.Command
	configPaths         []string
	baseDir             string // 相对路径的解析基准，空字符串表示当前工作目录
	envPrefix           string
	noTemplateExpansion bool // 禁用设置文件的 ${...} 展开
}

// Option 设置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 覆盖设置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置设置文件搜索路径，覆盖 [WithAppName] 生成的默认路径。
//
// 按顺序查找，命中首个文件即停止；相对路径基于 [WithBaseDir] 解析。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithBaseDir 设置相对路径的解析基准，绝对路径不受影响。
func WithBaseDir(path string) Option {
	return func(o *options) {
		o.baseDir = path
	}
}

// WithEnvPrefix 启用环境变量绑定。
//
// 变量名为前缀加大写 key，"." 与 "-" 转为 "_"：
//   - STYLECFG_OUTPUT_FORMAT → output.format
//   - STYLECFG_DECLARATION_BASE_DIR → declaration.base-dir
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutTemplateExpansion 禁用设置文件的 ${...} 展开。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}
