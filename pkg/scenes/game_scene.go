package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/event"
	"github.com/gonewx/armadness/pkg/game"
	"github.com/gonewx/armadness/pkg/systems"
	"github.com/gonewx/armadness/pkg/tracking"
	"github.com/gonewx/armadness/pkg/types"
	"github.com/gonewx/armadness/pkg/utils"
	"github.com/gonewx/armadness/pkg/world"
)

var colorPaused = color.RGBA{R: 0, G: 0, B: 0, A: 150}

// GameScene 一局游戏
//
// 每帧的顺序：收集输入 -> 累积计时 -> 物理步进（接触只入队）->
// 按 FIFO 分发全部事件 -> 旋转/寿命/粒子 -> 删除已标记实体。
// 所有会话状态都只在这里（主循环）修改。
type GameScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager

	world      *world.World
	look       *tracking.LookProvider
	tracker    *tracking.Session
	session    *game.GameSession
	timer      *systems.RoundTimer
	ticks      systems.TickAccumulator
	dispatcher *event.Dispatcher

	populator  *systems.WorldPopulator
	launcher   *systems.ProjectileLauncher
	collisions *systems.CollisionHandler
	particles  *systems.ParticleSystem
	spin       *systems.SpinSystem
	lifetime   *systems.LifetimeSystem
	render     *systems.RenderSystem

	drag         utils.LookDrag
	bananaButton *Button
	axeButton    *Button
	hudFace      text.Face
	buttonFace   text.Face

	gameOver  bool
	suspended bool // 跟踪会话被中断
}

// NewGameScene 创建一局游戏；rng 为 nil 时使用固定种子
func NewGameScene(state *game.GameState, sm *game.SceneManager, rng *rand.Rand) *GameScene {
	cfg := state.Config

	look := tracking.NewLookProvider()
	w := world.New(nil, rng)
	tracker := tracking.NewSession(look, w.Events)
	w.Pose = tracker

	session := game.NewGameSession(cfg.Round.DurationSeconds)
	particles := systems.NewParticleSystem(w, cfg.Particles)

	s := &GameScene{
		state:        state,
		sceneManager: sm,
		world:        w,
		look:         look,
		tracker:      tracker,
		session:      session,
		timer:        systems.NewRoundTimer(cfg.Round.DurationSeconds),
		dispatcher:   event.NewDispatcher(),
		populator:    systems.NewWorldPopulator(w, cfg.Targets),
		launcher:     systems.NewProjectileLauncher(w, cfg, state.Audio),
		collisions:   systems.NewCollisionHandler(w, session, particles, state.Audio, cfg.Audio.ExplosionSound),
		particles:    particles,
		spin:         systems.NewSpinSystem(w.Entities),
		lifetime:     systems.NewLifetimeSystem(w.Entities),
		render:       systems.NewRenderSystem(w.Entities),
		hudFace:      loadFace(state.Resources, 24),
		buttonFace:   loadFace(state.Resources, 22),
	}

	bottom := float64(config.GameWindowHeight) - config.FireButtonHeight - config.FireButtonMargin
	s.bananaButton = &Button{Label: "Banana", X: config.FireButtonMargin, Y: bottom, W: config.FireButtonWidth, H: config.FireButtonHeight}
	s.axeButton = &Button{
		Label: "Axe",
		X:     float64(config.GameWindowWidth) - config.FireButtonWidth - config.FireButtonMargin,
		Y:     bottom,
		W:     config.FireButtonWidth,
		H:     config.FireButtonHeight,
	}

	w.Physics.SetContactListener(s.collisions.HandleContact)
	s.timer.OnExpired(s.endRound)

	s.dispatcher.Subscribe(event.TypeFire, s.onFire)
	s.dispatcher.Subscribe(event.TypeTimerTick, s.onTimerTick)
	s.dispatcher.Subscribe(event.TypeContact, s.onContact)
	s.dispatcher.Subscribe(event.TypeSessionInterrupted, s.onInterrupted)
	s.dispatcher.Subscribe(event.TypeSessionResumed, s.onResumed)

	s.populator.Populate()
	return s
}

// OnEnter 开始跟踪、计时和背景音乐
func (s *GameScene) OnEnter() {
	s.tracker.Run()
	s.timer.Start()
	s.session.IsRunning = true
	s.state.Audio.PlayMusic(s.state.Config.Audio.BackgroundMusic)
}

// OnExit 离开游戏界面时暂停跟踪
func (s *GameScene) OnExit() {
	s.tracker.Pause()
	s.state.Audio.StopMusic()
	s.world.Events.Close()
}

// Session 返回当前一局的状态
func (s *GameScene) Session() *game.GameSession {
	return s.session
}

// Tracker 返回跟踪会话（平台中断回调的入口）
func (s *GameScene) Tracker() *tracking.Session {
	return s.tracker
}

// World 返回本局的运行上下文
func (s *GameScene) World() *world.World {
	return s.world
}

// GameOver 本局是否已经结束
func (s *GameScene) GameOver() bool {
	return s.gameOver
}

// Update 读取输入后推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[GameScene] Round abandoned")
		s.gameOver = true
		s.sceneManager.Navigate(game.SceneHome)
		return
	}

	s.collectInput()
	s.step(deltaTime)
}

// collectInput 发射按钮/按键转换为 Fire 事件，拖动与方向键转动视角
func (s *GameScene) collectInput() {
	if inpututil.IsKeyJustPressed(ebiten.Key1) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.world.Events.Push(event.Fire(types.ProjectileBanana))
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		s.world.Events.Push(event.Fire(types.ProjectileAxe))
	}

	clicked, cx, cy := utils.IsJustTouchedOrClicked()
	onButton := false
	if clicked {
		switch {
		case s.bananaButton.Contains(cx, cy):
			s.world.Events.Push(event.Fire(types.ProjectileBanana))
			onButton = true
		case s.axeButton.Contains(cx, cy):
			s.world.Events.Push(event.Fire(types.ProjectileAxe))
			onButton = true
		}
	}
	if onButton {
		s.drag.Reset()
		return
	}

	settings := s.state.Settings.GetSettings()
	dx, dy := s.drag.Update()
	dyaw, dpitch := float64(dx), float64(dy)

	const keyStep = 4.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dyaw -= keyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dyaw += keyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dpitch -= keyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dpitch += keyStep
	}
	s.Look(dyaw, dpitch, settings.LookSensitivity, settings.InvertLook)
}

// Look 按像素位移转动视角：向右拖动向右看，向下拖动向下看
func (s *GameScene) Look(dx, dy, sensitivity float64, invert bool) {
	if dx == 0 && dy == 0 {
		return
	}
	pitch := dy * sensitivity
	if invert {
		pitch = -pitch
	}
	s.look.Rotate(-dx*sensitivity, -pitch)
}

// Fire 请求发射一枚投射物（在下一次 step 中处理）
func (s *GameScene) Fire(kind types.ProjectileKind) {
	s.world.Events.Push(event.Fire(kind))
}

// step 推进一帧游戏逻辑（不读取输入）
func (s *GameScene) step(deltaTime float64) {
	if s.gameOver {
		return
	}

	if !s.suspended {
		for n := s.ticks.Add(deltaTime); n > 0; n-- {
			s.world.Events.Push(event.TimerTick())
		}
		s.world.Physics.Step(deltaTime)
	}

	s.dispatcher.Pump(s.world.Events)

	s.spin.Update(deltaTime)
	s.particles.Update(deltaTime)
	if !s.suspended {
		s.lifetime.Update(deltaTime)
	}
	s.world.Entities.RemoveMarkedEntities()
}

func (s *GameScene) onFire(e event.Event) {
	kind, ok := e.Payload.(types.ProjectileKind)
	if !ok || s.gameOver || s.suspended {
		return
	}
	s.launcher.Fire(kind)
}

func (s *GameScene) onTimerTick(event.Event) {
	if s.gameOver || s.suspended {
		return
	}
	s.timer.Tick()
	s.session.SecondsRemaining = s.timer.Remaining()
}

func (s *GameScene) onContact(e event.Event) {
	if s.gameOver {
		return
	}
	if c, ok := e.Payload.(event.Contact); ok {
		s.collisions.Apply(c)
	}
}

func (s *GameScene) onInterrupted(e event.Event) {
	s.tracker.Apply(e)
	if s.tracker.State() != tracking.StateInterrupted {
		return
	}
	s.suspended = true
	s.state.Audio.PauseMusic()
}

func (s *GameScene) onResumed(e event.Event) {
	s.tracker.Apply(e)
	if s.tracker.State() != tracking.StateRunning {
		return
	}
	s.suspended = false
	s.ticks.Reset()
	s.state.Audio.ResumeMusic()
}

// endRound 倒计时到 0：保存得分并回到主界面
func (s *GameScene) endRound() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.session.IsRunning = false

	if err := s.state.Scores.StoreRecord(s.session.Record()); err != nil {
		log.Printf("[GameScene] Warning: failed to store score: %v", err)
	}
	log.Printf("[GameScene] Game over, final score %d", s.session.Score)
	s.sceneManager.Navigate(game.SceneHome)
}

// Draw 绘制场景与 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	pose, ok := s.tracker.CurrentPose()
	s.render.Draw(screen, pose, ok)

	_, px, py := utils.GetPointerState()
	s.bananaButton.Draw(screen, s.buttonFace, s.bananaButton.Contains(px, py))
	s.axeButton.Draw(screen, s.buttonFace, s.axeButton.Contains(px, py))

	utils.DrawText(screen, fmt.Sprintf("Time: %d", s.session.SecondsRemaining), s.hudFace, 20, 16, colorText)
	utils.DrawText(screen, fmt.Sprintf("Score: %d", s.session.Score), s.hudFace, float64(config.GameWindowWidth)-160, 16, colorScore)

	if s.suspended {
		vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorPaused, false)
		utils.DrawCenteredText(screen, "Tracking interrupted", s.hudFace, float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)/2, colorText)
	}
}
