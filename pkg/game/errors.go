package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAudioUnavailable 音频上下文未初始化（设备不支持或初始化失败）
var ErrAudioUnavailable = errors.New("audio context unavailable")

// MissingAsset 一个缺失的资源
type MissingAsset struct {
	ID   string
	Path string
	Err  error
}

// AssetMissingError 启动时资源检查发现的全部缺失资源
// 这是可恢复错误：游戏继续运行，对应的声音/模型被跳过
type AssetMissingError struct {
	Missing []MissingAsset
}

// Error 实现 error 接口
func (e *AssetMissingError) Error() string {
	ids := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		ids = append(ids, m.ID)
	}
	return fmt.Sprintf("%d asset(s) missing: %s", len(e.Missing), strings.Join(ids, ", "))
}

// Has 判断指定资源ID是否在缺失列表中
func (e *AssetMissingError) Has(id string) bool {
	for _, m := range e.Missing {
		if m.ID == id {
			return true
		}
	}
	return false
}
