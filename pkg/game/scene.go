package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game (home, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Lifecycle is an optional interface for scenes that need to know when they
// become active or inactive (the tracking session runs only while the game screen is shown).
type Lifecycle interface {
	OnEnter()
	OnExit()
}

// SceneID 场景标识
type SceneID string

const (
	// SceneHome 主界面：开始按钮 + 上一局得分
	SceneHome SceneID = "home"
	// SceneGame 游戏界面：发射按钮 + 倒计时 + 得分
	SceneGame SceneID = "game"
)
