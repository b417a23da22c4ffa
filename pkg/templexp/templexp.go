package templexp

import (
	"fmt"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// Expander
// ═══════════════════════════════════════════════════════════════════════════

// LookupFunc 按名称查询变量，第二个返回值表示变量是否已设置。
type LookupFunc func(name string) (string, bool)

// Option Expander 配置函数。
type Option func(*Expander)

// Expander 执行 ${...} 展开。
//
// 变量查找顺序：本次展开中 ":=" 写入的值 → [WithVars] → [WithLookup]（默认 os.LookupEnv）。
// Expander 自身不可变，可在多个 goroutine 中复用。
type Expander struct {
	lookup LookupFunc
	vars   map[string]string
}

// WithLookup 替换默认的环境变量查找。
func WithLookup(fn LookupFunc) Option {
	return func(e *Expander) {
		if fn != nil {
			e.lookup = fn
		}
	}
}

// WithVars 追加显式变量，优先于 lookup。
func WithVars(vars map[string]string) Option {
	return func(e *Expander) {
		for k, v := range vars {
			e.vars[k] = v
		}
	}
}

// New 创建 Expander。
func New(opts ...Option) *Expander {
	e := &Expander{
		lookup: os.LookupEnv,
		vars:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Expand 对 text 执行 Shell 参数展开。
//
// 支持语法：
//   - ${VAR} - 变量替换
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - ${VAR:=default} / ${VAR=default} - 赋值（仅作用于当前展开）
//
// 仅在必填校验失败时返回 error；无法识别的表达式原样保留。
func (e *Expander) Expand(text string) (string, error) {
	s := &scope{e: e, assigned: make(map[string]string)}

	return s.expand(text)
}

// ExpandTemplate 使用进程环境变量展开 text。
func ExpandTemplate(text string) (string, error) {
	return New().Expand(text)
}

// ═══════════════════════════════════════════════════════════════════════════
// 单次展开
// ═══════════════════════════════════════════════════════════════════════════

type scope struct {
	e        *Expander
	assigned map[string]string
}

func (s *scope) get(name string) (string, bool) {
	if v, ok := s.assigned[name]; ok {
		return v, true
	}
	if v, ok := s.e.vars[name]; ok {
		return v, true
	}

	return s.e.lookup(name)
}

func (s *scope) expand(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) {
			buf.WriteByte(text[i])
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			buf.WriteByte('$')
			i++
			continue
		}

		end := closingBrace(text, i+2)
		if end < 0 {
			buf.WriteByte('$')
			i++
			continue
		}

		p, ok := parseParam(text[i+2 : end])
		if !ok {
			buf.WriteString(text[i : end+1])
			i = end + 1
			continue
		}

		out, err := s.eval(p)
		if err != nil {
			return "", err
		}
		buf.WriteString(out)
		i = end + 1
	}

	return buf.String(), nil
}

// eval 按 Bash 语义求值单个参数表达式。
func (s *scope) eval(p param) (string, error) {
	val, set := s.get(p.name)
	// 带冒号的运算符把空值视为未设置
	present := set && (!p.colon || val != "")

	switch p.op {
	case 0:
		return val, nil
	case '-':
		if present {
			return val, nil
		}
		return s.expand(p.word)
	case '+':
		if present {
			return s.expand(p.word)
		}
		return "", nil
	case '?':
		if present {
			return val, nil
		}
		if p.word == "" {
			return "", fmt.Errorf("templexp: %s: parameter null or not set", p.name)
		}
		return "", fmt.Errorf("templexp: %s: %s", p.name, p.word)
	case '=':
		if present {
			return val, nil
		}
		out, err := s.expand(p.word)
		if err != nil {
			return "", err
		}
		s.assigned[p.name] = out
		return out, nil
	}

	return "", nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 解析
// ═══════════════════════════════════════════════════════════════════════════

type param struct {
	name  string
	op    byte // 0, '-', '+', '?', '='
	colon bool
	word  string
}

func isNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

func isOperator(ch byte) bool {
	return ch == '-' || ch == '+' || ch == '?' || ch == '='
}

func parseParam(expr string) (param, bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return param{}, false
	}

	n := 1
	for n < len(expr) && isNameChar(expr[n]) {
		n++
	}
	p := param{name: expr[:n]}
	rest := expr[n:]

	switch {
	case rest == "":
		return p, true
	case len(rest) >= 2 && rest[0] == ':' && isOperator(rest[1]):
		p.colon = true
		p.op = rest[1]
		p.word = rest[2:]
	case isOperator(rest[0]):
		p.op = rest[0]
		p.word = rest[1:]
	default:
		return param{}, false
	}

	return p, true
}

// closingBrace 返回与 start 之前的 "${" 匹配的 "}" 位置，找不到时返回 -1。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}
