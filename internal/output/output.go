// Package output 负责把命令结果写到 stdout 或文件。
package output

import (
	"fmt"
	"io"
	"log/slog"
)

// Write 将 data 写入 path；path 为空或 "-" 时写入 w。
//
// 写文件时先写临时文件再原子替换，失败不会留下半截输出。
func Write(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}

	if err := writeFile(path, data); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	slog.Debug("Wrote output file", "path", path, "bytes", len(data))

	return nil
}
