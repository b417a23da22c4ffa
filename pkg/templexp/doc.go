// Package templexp 提供声明文件字符串的 Shell 参数展开。
//
// 仅处理 ${...} 语法，适合在 YAML/JSON/TOML 样式声明中做轻量替换，
// 例如按环境切换品牌色或内容扫描目录。不执行命令、不引入模板引擎。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. 支持嵌套展开与 "$$" 字面量
//  3. ":=" 赋值仅作用于当前展开过程
//  4. 无法识别的表达式保持原样
//
// # 快速开始
//
//	expanded, err := templexp.ExpandTemplate(`brand: "${BRAND_COLOR:-#B7410E}"`)
//
// 注入额外变量（优先于环境变量）：
//
//	e := templexp.New(templexp.WithVars(map[string]string{"BRAND_COLOR": "#0EA5E9"}))
//	expanded, err := e.Expand(content)
package templexp
