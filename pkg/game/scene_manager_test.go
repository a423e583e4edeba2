package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene and Lifecycle interfaces.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	entered      int
	exited       int
	onUpdate     func()
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) OnEnter() { m.entered++ }
func (m *MockScene) OnExit()  { m.exited++ }

// TestSceneManagerSwitchTo verifies SwitchTo sets the scene and fires lifecycle hooks.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(SceneHome, first)
	sm.SwitchTo(SceneGame, second)

	if sm.GetCurrentScene() != second || sm.CurrentID() != SceneGame {
		t.Error("SwitchTo did not set the current scene correctly")
	}
	if first.entered != 1 || first.exited != 1 {
		t.Errorf("first scene enter/exit = %d/%d, want 1/1", first.entered, first.exited)
	}
	if second.entered != 1 || second.exited != 0 {
		t.Errorf("second scene enter/exit = %d/%d, want 1/0", second.entered, second.exited)
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(SceneHome, mockScene)

	sm.Update(0.016)

	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded correctly: %+v", mockScene)
	}
}

// TestSceneManagerNavigateDeferred 导航在当前场景 Update 之后才生效
func TestSceneManagerNavigateDeferred(t *testing.T) {
	sm := NewSceneManager()
	created := 0
	sm.Register(SceneGame, func() Scene {
		created++
		return &MockScene{}
	})

	home := &MockScene{}
	home.onUpdate = func() {
		sm.Navigate(SceneGame)
		if sm.GetCurrentScene() != home {
			t.Error("navigation must not happen during Update")
		}
	}
	sm.SwitchTo(SceneHome, home)

	sm.Update(0.016)

	if created != 1 {
		t.Errorf("factory called %d times, want 1", created)
	}
	if sm.CurrentID() != SceneGame {
		t.Errorf("CurrentID() = %s, want game", sm.CurrentID())
	}
	if home.exited != 1 {
		t.Error("home scene should have been exited")
	}
}

// TestSceneManagerUnknownScene 未注册场景的导航请求被忽略
func TestSceneManagerUnknownScene(t *testing.T) {
	sm := NewSceneManager()
	home := &MockScene{}
	sm.SwitchTo(SceneHome, home)

	sm.Navigate("settings")
	sm.Update(0.016)

	if sm.GetCurrentScene() != home {
		t.Error("unknown navigation should keep the current scene")
	}
}

// TestSceneManagerNoScene 没有场景时 Update/Draw 不会崩溃
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
}
