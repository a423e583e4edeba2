// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile 包中。
// 本包按路径前缀把读取请求分发到 assets 或 data 文件系统。
//
// 使用前必须调用 Init() 初始化；未初始化时 ReadAsset 直接读磁盘，
// 方便命令行工具和测试在仓库根目录下运行。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotInitialized Init 之前调用读取函数
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 设置资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// reset 恢复未初始化状态（测试用）
func reset() {
	assetsFS, dataFS = nil, nil
	initialized = false
}

// normalize 统一为正斜杠并去掉 "./" 前缀
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// route 根据路径前缀选择文件系统
func route(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	path = normalize(path)
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// ReadFile 从嵌入文件系统读取文件
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	fsys, name, err := route(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(fsys, name)
	return err == nil
}

// ReadAsset 先读嵌入文件系统，失败时回退到磁盘
// 开发时可以直接替换仓库里的 YAML 而无需重新编译
func ReadAsset(path string) ([]byte, error) {
	if initialized {
		if data, err := ReadFile(path); err == nil {
			return data, nil
		}
	}

	data, err := os.ReadFile(filepath.FromSlash(normalize(path)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
