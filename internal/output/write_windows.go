//go:build windows

package output

import "os"

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644) //nolint:gosec // generated config is not secret
}
