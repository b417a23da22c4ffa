package stylecfg

import "time"

// DefaultScriptTimeout 脚本声明的默认求值时限。
const DefaultScriptTimeout = 5 * time.Second

// options 声明加载选项。
type options struct {
	paths               []string          // 搜索路径，为空时使用 DefaultPaths()
	baseDir             string            // 相对路径的解析基准
	noTemplateExpansion bool              // 禁用 ${...} 展开
	vars                map[string]string // 展开时的额外变量
	format              Format            // 强制格式，为空时按扩展名推断
	scriptTimeout       time.Duration     // 脚本求值时限，<= 0 时使用 DefaultScriptTimeout
}

// Option 声明加载选项函数。
type Option func(*options)

// WithPaths 设置声明文件搜索路径。
//
// 按顺序查找，命中首个文件即停止；相对路径基于 [WithBaseDir] 解析。
func WithPaths(paths ...string) Option {
	return func(o *options) {
		o.paths = paths
	}
}

// WithBaseDir 设置相对路径的解析基准，默认为当前工作目录。
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithoutTemplateExpansion 禁用声明内容的 ${...} 展开。
//
// 脚本声明（.js/.cjs/.mjs）始终不做展开，模板字符串由 JS 引擎自行处理。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}

// WithVars 提供展开时的额外变量，优先于环境变量。
//
// 示例：
//
//	stylecfg.Load(stylecfg.WithVars(map[string]string{"BRAND": "#B7410E"}))
func WithVars(vars map[string]string) Option {
	return func(o *options) {
		o.vars = vars
	}
}

// WithFormat 强制使用指定格式解析，忽略文件扩展名（适合 stdin 等无扩展名输入）。
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithScriptTimeout 设置脚本声明的求值时限，超时返回 [ErrScriptTimeout]。
func WithScriptTimeout(d time.Duration) Option {
	return func(o *options) {
		o.scriptTimeout = d
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.scriptTimeout <= 0 {
		o.scriptTimeout = DefaultScriptTimeout
	}

	return o
}
