package stylecfg

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/templexp"
)

// DefaultPaths 返回声明文件的默认搜索顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. tailwind.config.js / .cjs / .mjs - 工具原生脚本声明
//  2. tailwind.config.yaml / .yml / .json / .toml - 静态声明
//  3. config/ 子目录下的同名静态声明
func DefaultPaths() []string {
	paths := []string{
		"tailwind.config.js",
		"tailwind.config.cjs",
		"tailwind.config.mjs",
	}
	for _, dir := range []string{"", "config"} {
		for _, ext := range []string{".yaml", ".yml", ".json", ".toml"} {
			paths = append(paths, filepath.Join(dir, "tailwind.config"+ext))
		}
	}

	return paths
}

// Load 按搜索路径查找并加载首个存在的声明文件。
//
// 搜索路径由 [WithPaths] 设置，默认 [DefaultPaths]；全部不存在时返回 [ErrNotFound]。
func Load(opts ...Option) (*Document, error) {
	o := newOptions(opts)

	paths := o.paths
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

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
			return nil, fmt.Errorf("read declaration %s: %w", path, err)
		}

		slog.Debug("Loaded declaration file", "path", path)

		return loadBytes(path, content, o)
	}

	slog.Debug("No declaration file found", "paths", paths)

	return nil, fmt.Errorf("%w (searched %d paths)", ErrNotFound, len(paths))
}

// LoadFile 加载指定路径的声明文件。
func LoadFile(path string, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	if o.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(o.baseDir, path)
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is given by the caller
	if err != nil {
		return nil, fmt.Errorf("read declaration %s: %w", path, err)
	}

	return loadBytes(path, content, o)
}

// LoadBytes 从内存加载声明，name 用于推断格式与报告错误。
func LoadBytes(name string, content []byte, opts ...Option) (*Document, error) {
	return loadBytes(name, content, newOptions(opts))
}

func loadBytes(name string, content []byte, o *options) (*Document, error) {
	format := o.format
	if format == "" {
		format = FormatFromPath(name)
	}

	if !o.noTemplateExpansion && format != FormatScript {
		expanded, err := templexp.New(templexp.WithVars(o.vars)).Expand(string(content))
		if err != nil {
			return nil, fmt.Errorf("expand template in %s: %w", name, err)
		}
		content = []byte(expanded)
	}

	decl, err := parseAs(format, name, content, o.scriptTimeout)
	if err != nil {
		return nil, err
	}

	doc, err := FromMap(decl)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	doc.Source = name

	slog.Debug("Parsed declaration",
		"source", name,
		"format", format,
		"globs", len(doc.Content),
		"plugins", len(doc.Plugins),
		"templateExpansion", !o.noTemplateExpansion && format != FormatScript,
	)

	return doc, nil
}
