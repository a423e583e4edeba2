package scenes

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/components"
	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/ecs"
	"github.com/gonewx/armadness/pkg/game"
	"github.com/gonewx/armadness/pkg/systems"
	"github.com/gonewx/armadness/pkg/types"
)

// newTestState 无音频、无持久化的共享状态
func newTestState(cfg *config.GameConfig) *game.GameState {
	return game.NewGameState(cfg, game.NewResourceManager(nil), nil)
}

func newTestGameScene(t *testing.T, cfg *config.GameConfig) (*GameScene, *game.GameState) {
	t.Helper()
	state := newTestState(cfg)
	sm := game.NewSceneManager()
	sm.Register(game.SceneHome, func() game.Scene { return NewHomeScene(state, sm) })

	scene := NewGameScene(state, sm, rand.New(rand.NewSource(1)))
	sm.SwitchTo(game.SceneGame, scene)
	return scene, state
}

func TestGameScenePopulatesWorld(t *testing.T) {
	scene, _ := newTestGameScene(t, config.DefaultGameConfig())

	targets, sharks := systems.CountKinds(scene.World().Entities)
	if targets != 90 || sharks != 10 {
		t.Errorf("Expected 90 targets and 10 sharks, got %d and %d", targets, sharks)
	}
	if !scene.Session().IsRunning {
		t.Error("Session should be running after OnEnter")
	}
	if scene.Session().SecondsRemaining != 30 {
		t.Errorf("Expected 30 seconds, got %d", scene.Session().SecondsRemaining)
	}
}

func TestGameSceneStoresScoreWhenTimeRunsOut(t *testing.T) {
	scene, state := newTestGameScene(t, config.DefaultGameConfig())
	scene.Session().AddScore(17)

	for i := 0; i < 29; i++ {
		scene.step(1.0)
	}
	if scene.GameOver() {
		t.Fatal("Round ended early")
	}
	if _, ok := state.Scores.Load(); ok {
		t.Fatal("Score stored before the round ended")
	}

	scene.step(1.0)
	if !scene.GameOver() {
		t.Fatal("Round should end after 30 seconds")
	}
	if got, ok := state.Scores.Load(); !ok || got != 17 {
		t.Errorf("Load() = %d, %v; want 17, true", got, ok)
	}

	// 结束后不再计时或计分
	scene.step(1.0)
	if scene.Session().SecondsRemaining != 0 {
		t.Errorf("Expected 0 seconds remaining, got %d", scene.Session().SecondsRemaining)
	}
}

func TestGameSceneFireHitsTargetAhead(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Targets.Count = 0
	scene, _ := newTestGameScene(t, cfg)

	em := scene.World().Entities
	target := em.CreateEntity()
	em.AddComponent(target, &components.EntityKindComponent{Kind: types.KindShark})
	em.AddComponent(target, &components.TransformComponent{Position: mgl64.Vec3{0, 0, -3}})
	em.AddComponent(target, &components.PhysicsBodyComponent{
		Category:        types.CategoryTarget,
		ContactTestMask: types.CategoryProjectile,
		Radius:          0.5,
	})

	scene.Fire(types.ProjectileBanana)
	for i := 0; i < 60 && scene.Session().Score == 0; i++ {
		scene.step(1.0 / 60)
	}

	if scene.Session().Score != 5 {
		t.Errorf("Expected score 5, got %d", scene.Session().Score)
	}
	if em.Exists(target) {
		t.Error("Target should be removed after the hit")
	}
}

func TestGameSceneInterruptionPausesRound(t *testing.T) {
	scene, _ := newTestGameScene(t, config.DefaultGameConfig())

	scene.Tracker().Interrupt("phone call")
	for i := 0; i < 5; i++ {
		scene.step(1.0)
	}
	if got := scene.Session().SecondsRemaining; got != 30 {
		t.Errorf("Timer advanced while interrupted: %d", got)
	}

	scene.Fire(types.ProjectileAxe)
	scene.step(0.01)
	if n := len(ecs.GetEntitiesWith1[*components.LifetimeComponent](scene.World().Entities)); n != 0 {
		t.Errorf("Fire should be ignored while interrupted, %d projectiles exist", n)
	}

	scene.Tracker().InterruptionEnded()
	scene.step(0.01)
	scene.step(1.0)
	if got := scene.Session().SecondsRemaining; got != 29 {
		t.Errorf("Expected 29 seconds after resuming, got %d", got)
	}
}

func TestHomeSceneScoreLabel(t *testing.T) {
	state := newTestState(nil)
	home := NewHomeScene(state, game.NewSceneManager())

	home.OnEnter()
	if label := home.ScoreLabel(); label != "" {
		t.Errorf("Expected no label without a stored score, got %q", label)
	}

	if err := state.Scores.Store(17); err != nil {
		t.Fatal(err)
	}
	home.OnEnter()
	if label := home.ScoreLabel(); label != "Score: 17" {
		t.Errorf("Expected %q, got %q", "Score: 17", label)
	}
}

func TestLookRotatesView(t *testing.T) {
	scene, _ := newTestGameScene(t, config.DefaultGameConfig())

	scene.Look(100, 0, 0.01, false)
	yaw, _ := scene.look.Angles()
	if yaw >= 0 {
		t.Errorf("Dragging right should turn right (negative yaw), got %v", yaw)
	}

	scene.Look(0, 50, 0.01, false)
	_, pitch := scene.look.Angles()
	if pitch >= 0 {
		t.Errorf("Dragging down should look down, got pitch %v", pitch)
	}

	scene.Look(0, 100, 0.01, true)
	_, inverted := scene.look.Angles()
	if inverted <= pitch {
		t.Errorf("Inverted look should raise pitch, got %v -> %v", pitch, inverted)
	}
}
