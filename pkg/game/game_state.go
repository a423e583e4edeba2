package game

import (
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/armadness/pkg/config"
)

// GameState 跨场景共享的服务
// 由 app.NewApp 创建一次，传给每个场景；场景之间不再通过全局变量通信
type GameState struct {
	Config    *config.GameConfig
	Resources *ResourceManager
	Audio     *AudioManager
	Settings  *SettingsManager
	Scores    *ScoreStore

	gdataManager *gdata.Manager // 可为 nil（降级模式）
}

// NewGameState 组装共享服务
// gdataManager 为 nil 时设置和得分都只保存在内存中
func NewGameState(cfg *config.GameConfig, rm *ResourceManager, gdataManager *gdata.Manager) *GameState {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	settings := NewSettingsManager(gdataManager)
	return &GameState{
		Config:       cfg,
		Resources:    rm,
		Audio:        NewAudioManager(rm, settings),
		Settings:     settings,
		Scores:       NewScoreStore(gdataManager),
		gdataManager: gdataManager,
	}
}

// GetGdataManager 返回底层存储管理器（可能为 nil）
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}
