package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数，每次导航都创建新的场景实例
type SceneFactory func() Scene

// SceneManager controls which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
//
// 导航请求（Navigate）在当前帧结束时才生效，
// 这样场景可以在自己的 Update 中安全地请求离开。
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	factories    map[SceneID]SceneFactory
	pending      SceneID
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[SceneID]SceneFactory),
	}
}

// Register 注册场景工厂
func (sm *SceneManager) Register(id SceneID, factory SceneFactory) {
	sm.factories[id] = factory
}

// SwitchTo changes the active scene immediately.
func (sm *SceneManager) SwitchTo(id SceneID, scene Scene) {
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = scene
	sm.currentID = id
	if lc, ok := scene.(Lifecycle); ok {
		lc.OnEnter()
	}
}

// Navigate 请求在本帧结束后切换到指定场景（无参数导航）
func (sm *SceneManager) Navigate(id SceneID) {
	sm.pending = id
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回当前场景ID
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Update updates the active scene, then applies a pending navigation.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}

	if sm.pending == "" {
		return
	}
	id := sm.pending
	sm.pending = ""

	factory, ok := sm.factories[id]
	if !ok {
		log.Printf("[SceneManager] 错误: 未注册的场景: %s", id)
		return
	}
	sm.SwitchTo(id, factory())
	log.Printf("[SceneManager] 切换到场景: %s", id)
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
