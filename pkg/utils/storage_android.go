//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 gdata 在 Android 上使用的目录存在并可写
// gdata 使用 /data/data/{package}/ 作为根目录，但不会预先创建子目录，
// 因此必须在 gdata.Open 之前调用。返回创建好的目录。
func EnsureStorageDir() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("failed to detect Android app: %w", err)
	}
	pkg := packageFromCmdline(cmdline)
	if pkg == "" {
		return "", fmt.Errorf("failed to detect Android app: empty /proc/self/cmdline")
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create saves directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return "", fmt.Errorf("saves directory %s is not writable: %w", dir, err)
	}
	os.Remove(probe)

	return dir, nil
}
