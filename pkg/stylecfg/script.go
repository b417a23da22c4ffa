package stylecfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/grafana/sobek"
)

// 脚本声明（tailwind.config.js 一类）在嵌入式 JS 引擎中求值。
//
// 只提供 module/exports 与一个 require 桩，不做任何文件或网络访问：
//   - tailwindcss/defaultTheme → [DefaultTheme] 的 JS 形态
//   - tailwindcss/colors → 默认 colors 分类
//   - tailwindcss/plugin → 返回内联插件
//   - 其他模块 → 以模块名为标识的插件引用，可被调用（插件选项被忽略）

var (
	esmDefaultExport = regexp.MustCompile(`(?m)^[ \t]*export\s+default\s+`)
	esmDefaultImport = regexp.MustCompile(`(?m)^[ \t]*import\s+([A-Za-z_$][\w$]*)\s+from\s+['"]([^'"]+)['"];?`)
)

const scriptPrelude = `
var module = { exports: {} };
var exports = module.exports;
var __defaultTheme = JSON.parse(__defaultThemeJSON);
function __pluginRef(name) {
  var ref = function () { return ref; };
  ref.__plugin = name;
  return ref;
}
function require(name) {
  switch (name.replace(/\.js$/, '')) {
  case 'tailwindcss/defaultTheme':
  case 'tailwindcss/stubs/defaultConfig.stub':
    return __defaultTheme;
  case 'tailwindcss/colors':
    return __defaultTheme.colors || {};
  case 'tailwindcss/plugin':
    var plugin = function () { return __pluginRef('inline'); };
    plugin.withOptions = function () { return function () { return __pluginRef('inline'); }; };
    return plugin;
  }
  return __pluginRef(name);
}
`

// scriptEpilogue 把导出对象规整为纯数据后以 JSON 交回 Go。
const scriptEpilogue = `
(function (cfg) {
  if (cfg && cfg.__esModule && cfg.default) cfg = cfg.default;
  if (cfg === null || typeof cfg !== 'object' || Array.isArray(cfg)) return JSON.stringify(cfg === undefined ? null : cfg);
  var out = {};
  for (var key in cfg) out[key] = cfg[key];
  if (Array.isArray(out.plugins)) {
    out.plugins = out.plugins.map(function (p) {
      return typeof p === 'function' ? (p.__plugin || 'inline') : p;
    });
  }
  var helpers = {
    colors: __defaultTheme.colors || {},
    theme: function (path, fallback) {
      var cur = __defaultTheme;
      var parts = String(path).split('.');
      for (var i = 0; i < parts.length; i++) {
        if (cur === null || typeof cur !== 'object' || !(parts[i] in cur)) return fallback;
        cur = cur[parts[i]];
      }
      return cur;
    }
  };
  function callCategories(obj) {
    if (obj === null || typeof obj !== 'object') return obj;
    var res = {};
    for (var name in obj) res[name] = typeof obj[name] === 'function' ? obj[name](helpers) : obj[name];
    return res;
  }
  if (out.theme && typeof out.theme === 'object') {
    var theme = callCategories(out.theme);
    if (theme.extend) theme.extend = callCategories(theme.extend);
    out.theme = theme;
  }
  return JSON.stringify(out);
})(module.exports)
`

// rewriteESM 将最常见的 ESM 写法改写为 CommonJS。
func rewriteESM(src string) string {
	src = esmDefaultImport.ReplaceAllString(src, `var $1 = require("$2");`)
	return esmDefaultExport.ReplaceAllString(src, "module.exports = ")
}

// evalScript 求值脚本声明，超过 timeout 时中断 VM 并返回 [ErrScriptTimeout]。
func evalScript(name, src string, timeout time.Duration) (out any, err error) {
	themeJSON, err := json.Marshal(DefaultTheme().jsValue())
	if err != nil {
		return nil, fmt.Errorf("encode default theme: %w", err)
	}

	vm := sobek.New()
	timer := time.AfterFunc(timeout, func() { vm.Interrupt(ErrScriptTimeout) })
	defer timer.Stop()
	defer func() {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			out, err = nil, fmt.Errorf("evaluate %s after %s: %w", name, timeout, ErrScriptTimeout)
		}
	}()

	if err := vm.Set("__defaultThemeJSON", string(themeJSON)); err != nil {
		return nil, err
	}
	if _, err := vm.RunScript("prelude.js", scriptPrelude); err != nil {
		return nil, fmt.Errorf("script prelude: %w", err)
	}
	if _, err := vm.RunScript(name, rewriteESM(src)); err != nil {
		return nil, err
	}

	result, err := vm.RunScript("epilogue.js", scriptEpilogue)
	if err != nil {
		return nil, fmt.Errorf("export declaration: %w", err)
	}

	if err := json.Unmarshal([]byte(result.String()), &out); err != nil {
		return nil, fmt.Errorf("decode exported declaration: %w", err)
	}

	return out, nil
}
