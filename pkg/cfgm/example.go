package cfgm

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ExampleYAML 按 json / desc tag 生成带注释的 YAML，值取自 cfg。
//
// 嵌套结构体输出为带空行与标题注释的段落：
//
//	# 输出配置
//	output:
//	  format: 'yaml' # 输出格式
func ExampleYAML(cfg any) []byte {
	var buf bytes.Buffer
	buf.WriteString("# 设置示例文件, 复制为设置文件后按需修改\n")

	val := reflect.ValueOf(cfg)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if val.Kind() == reflect.Struct {
		writeExampleFields(&buf, val, 0)
	}

	return buf.Bytes()
}

func writeExampleFields(buf *bytes.Buffer, val reflect.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" || field.PkgPath != "" {
			continue
		}
		desc := field.Tag.Get("desc")

		if isStructType(field.Type) {
			nested := val.Field(i)
			if nested.Kind() == reflect.Pointer {
				if nested.IsNil() {
					continue
				}
				nested = nested.Elem()
			}
			buf.WriteString("\n")
			if desc != "" {
				fmt.Fprintf(buf, "%s# %s\n", indent, desc)
			}
			fmt.Fprintf(buf, "%s%s:\n", indent, key)
			writeExampleFields(buf, nested, depth+1)
			continue
		}

		fmt.Fprintf(buf, "%s%s: %s", indent, key, yamlScalar(val.Field(i)))
		if desc != "" {
			fmt.Fprintf(buf, " # %s", desc)
		}
		buf.WriteString("\n")
	}
}

func yamlScalar(v reflect.Value) string {
	if v.Type() == durationType {
		return v.Interface().(time.Duration).String()
	}

	switch v.Kind() {
	case reflect.String:
		return quote(v.String())
	case reflect.Slice:
		items := make([]string, v.Len())
		for i := range v.Len() {
			items[i] = yamlScalar(v.Index(i))
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
