// Package cfgm 加载命令行工具自身的设置。
//
// 设置按默认值、设置文件、环境变量与 CLI flags 逐层覆盖，key 由 json tag 描述，
// YAML / JSON / TOML 设置文件共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 设置文件 - [WithConfigPaths] 或 [WithAppName] 生成的默认路径，命中首个即停止
//  3. 环境变量 - [WithEnvPrefix] 按 key 自动生成绑定
//  4. CLI flags - [WithCommand]，仅用户显式设置的 flag 生效
//
// # Flag 映射
//
// 默认把 key 中的 "." 换成 "-"（output.format → --output-format）。
// 字段可用 flag tag 指定已有的 flag 名：
//
//	type OutputConfig struct {
//	    Format string `json:"format" flag:"format" desc:"输出格式"`
//	}
//
// # 设置示例
//
// [ExampleYAML] 按 desc tag 生成带注释的 YAML，可作为设置文件模板。
package cfgm
