package cfgm

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/templexp"
)

// DefaultPaths 返回应用设置文件的搜索顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录
//  2. ~/.appname.yaml - 用户主目录
//  3. /etc/appname/config.yaml - 系统级
func DefaultPaths(appName string) []string {
	if appName == "" {
		return nil
	}

	paths := []string{"." + appName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
	}

	return append(paths, "/etc/"+appName+"/config.yaml")
}

// Load 读取设置并按优先级合并，见包文档。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	paths := o.configPaths
	if len(paths) == 0 {
		paths = DefaultPaths(o.appName)
	}

	configMap := structToMap(defaultConfig)

	fileMap, err := loadFirstFile(paths, o)
	if err != nil {
		return nil, err
	}
	mergeMaps(configMap, fileMap)

	if o.envPrefix != "" {
		bindings := generateEnvBindings(o.envPrefix, collectConfigKeys(reflect.TypeOf(defaultConfig)))
		for envKey, configPath := range bindings {
			if val, ok := os.LookupEnv(envKey); ok && val != "" {
				setByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	if o.cmd != nil {
		applyCLIFlags(o.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的 CLI 版本，注入 [WithCommand] 与 [WithAppName]。
//
// 示例：
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), "stylecfg",
//	    cfgm.WithEnvPrefix("STYLECFG_"),
//	)
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	base := []Option{WithCommand(cmd), WithAppName(appName)}

	return Load(defaultConfig, append(base, opts...)...)
}

func loadFirstFile(paths []string, o *options) (map[string]any, error) {
	for _, p := range paths {
		path := p
		if o.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(o.baseDir, path)
		}

		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted search list
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}

		if !o.noTemplateExpansion {
			expanded, err := templexp.ExpandTemplate(string(content))
			if err != nil {
				return nil, fmt.Errorf("expand template in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}

		slog.Debug("Loaded settings file", "path", path, "templateExpansion", !o.noTemplateExpansion)

		return fileMap, nil
	}

	if len(paths) > 0 {
		slog.Debug("No settings file found, using defaults", "paths", paths)
	}

	return nil, nil
}

// collectConfigKeys 以 json tag 为准收集叶子 key（如 declaration.base-dir）。
func collectConfigKeys(typ reflect.Type) []string {
	var keys []string
	walkFields(typ, "", func(_ reflect.StructField, fullKey string) {
		keys = append(keys, fullKey)
	})

	return keys
}

// generateEnvBindings 生成 环境变量名 → key 的映射。
func generateEnvBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

// applyCLIFlags 把用户显式设置的 flags 写入设置 map。
func applyCLIFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	walkFields(typ, prefix, func(field reflect.StructField, fullKey string) {
		name := flagName(field, fullKey)
		if name == "" || !cmd.IsSet(name) {
			return
		}
		if value, ok := flagValue(cmd, name, field.Type); ok {
			setByPath(config, fullKey, value)
			slog.Debug("Loaded CLI flag", "flag", name, "path", fullKey)
		}
	})
}

// walkFields 深度优先遍历叶子字段，fn 收到字段与完整 key。
func walkFields(typ reflect.Type, prefix string, fn func(field reflect.StructField, fullKey string)) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" || field.PkgPath != "" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if isStructType(field.Type) {
			walkFields(field.Type, fullKey, fn)
			continue
		}
		fn(field, fullKey)
	}
}

// flagName 优先使用 flag tag，"-" 表示该字段没有对应 flag。
func flagName(field reflect.StructField, fullKey string) string {
	switch tag := field.Tag.Get("flag"); tag {
	case "":
		return strings.ReplaceAll(fullKey, ".", "-")
	case "-":
		return ""
	default:
		return tag
	}
}

func flagValue(cmd *cli.Command, name string, typ reflect.Type) (any, bool) {
	if typ == durationType {
		return cmd.Duration(name), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(name), true
	case reflect.Bool:
		return cmd.Bool(name), true
	case reflect.Int:
		return cmd.Int(name), true
	case reflect.Int64:
		return cmd.Int64(name), true
	case reflect.Float64:
		return cmd.Float64(name), true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cmd.StringSlice(name), true
		}
	}

	return nil, false
}
