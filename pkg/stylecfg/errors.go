package stylecfg

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedConfig 声明缺少必需结构或字段类型不符。
	ErrMalformedConfig = errors.New("malformed config")

	// ErrNotFound 搜索路径中没有任何声明文件。
	ErrNotFound = errors.New("config declaration not found")

	// ErrScriptTimeout 脚本声明超出求值时限，见 [WithScriptTimeout]。
	ErrScriptTimeout = errors.New("script evaluation timed out")
)

// MalformedError 描述声明中具体出错的位置。
//
// errors.Is(err, ErrMalformedConfig) 对其成立。
type MalformedError struct {
	// Path 出错字段的点分路径，如 "theme.extend.colors"；根节点为空字符串。
	Path   string
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	msg := "malformed config"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is 使 MalformedError 匹配 ErrMalformedConfig。
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedConfig
}

func (e *MalformedError) Unwrap() error { return e.Err }

func malformed(path, format string, args ...any) error {
	return &MalformedError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}
