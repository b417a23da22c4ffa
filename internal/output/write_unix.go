//go:build !windows

package output

import (
	"log/slog"

	"github.com/google/renameio/v2"
)

// writeFile 使用 renameio：fsync 后原子 rename。
func writeFile(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer func() {
		// 已提交时 Cleanup 为空操作
		if err := pending.Cleanup(); err != nil {
			slog.Debug("Cleanup pending output file", "path", path, "error", err)
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return err
	}

	return pending.CloseAtomicallyReplace()
}
