// Package stylecfg 加载实用类 CSS 生成工具的样式配置声明。
//
// 声明包含四部分：内容扫描 glob（content）、主题覆盖与扩展（theme / theme.extend）、
// 字体等 token 映射，以及可选的插件列表（plugins）。
// 本包只负责把声明读入不可变的 [Document] 并提供合并、校验与序列化，
// CSS 规则生成、文件监听等由外部构建工具完成。
//
// # 支持的格式
//
//   - .yaml / .yml - YAML 声明
//   - .json - JSON 声明
//   - .toml - TOML 声明
//   - .js / .cjs / .mjs - 工具原生脚本声明，在嵌入式 JS 引擎中求值
//
// 静态格式在解析前执行 ${VAR} 展开（见 templexp 包），可用 [WithoutTemplateExpansion] 关闭。
//
// # 快速开始
//
//	doc, err := stylecfg.Load()  // 按 DefaultPaths() 搜索
//	if errors.Is(err, stylecfg.ErrMalformedConfig) {
//	    // 声明结构错误
//	}
//	rust := doc.Extensions()["colors"]["rust"]
//
// 计算叠加默认值后的主题：
//
//	theme := doc.Resolve(stylecfg.DefaultTheme())
//
// # 合并语义
//
// [MergeExtend] 按分类叠加 token，冲突时 override 胜出，且不修改入参；
// theme 下非 extend 的分类整体替换默认分类（见 [Document.Resolve]）。
//
// # 嵌套 token
//
// 嵌套映射以 "-" 展平，DEFAULT 对应父名称：
//
//	colors:
//	  brand:
//	    DEFAULT: "#B7410E"   # → brand
//	    light: "#E07B53"     # → brand-light
package stylecfg
