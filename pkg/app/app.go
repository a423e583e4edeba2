// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/embedded"
	"github.com/gonewx/armadness/pkg/event"
	"github.com/gonewx/armadness/pkg/game"
	"github.com/gonewx/armadness/pkg/scenes"
	"github.com/gonewx/armadness/pkg/utils"
)

// 应用常量
const (
	// AppName gdata 存储使用的应用名
	AppName = "armadness"
	// ResourceConfigPath 资源清单路径
	ResourceConfigPath = "assets/config/resources.yaml"
	// SampleRate 音频采样率
	SampleRate = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 靶子布局的随机种子，0 表示使用当前时间
	Seed int64
	// ConfigPath 玩法配置文件，为空时使用 data/game.yaml
	ConfigPath string
	// ResetScore 启动时清除已保存的得分
	ResetScore bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	state                    *game.GameState
	platform                 *event.Queue // 平台线程上报的会话事件，主循环转发
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(SampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	ReportMissingAssets(resourceManager)

	state := game.NewGameState(gameConfig, resourceManager, openStorage())
	if cfg.ResetScore {
		if err := state.Scores.Clear(); err != nil {
			log.Printf("[App] Warning: failed to reset score: %v", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	// 创建场景管理器；每次进入游戏都生成新的一局
	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.SceneHome, func() game.Scene {
		return scenes.NewHomeScene(state, sceneManager)
	})
	sceneManager.Register(game.SceneGame, func() game.Scene {
		return scenes.NewGameScene(state, sceneManager, rand.New(rand.NewSource(rng.Int63())))
	})
	sceneManager.SwitchTo(game.SceneHome, scenes.NewHomeScene(state, sceneManager))

	return &App{
		sceneManager: sceneManager,
		state:        state,
		platform:     event.NewQueue(),
		verbose:      cfg.Verbose,
	}, nil
}

// LoadGameConfig 读取玩法配置（嵌入资源优先，其次磁盘）
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		path = config.DefaultGameConfigPath
	}
	data, err := embedded.ReadAsset(path)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("游戏配置解析失败 (%s): %w", path, err)
	}
	log.Printf("[Config] Loaded %s", path)
	return gameConfig, nil
}

// ReportMissingAssets 启动时汇总报告一次缺失的资源，返回缺失数量
func ReportMissingAssets(rm *game.ResourceManager) int {
	err := rm.CheckAssets()
	if err == nil {
		return 0
	}

	var missing *game.AssetMissingError
	if !errors.As(err, &missing) {
		log.Printf("[App] Warning: asset check failed: %v", err)
		return 0
	}
	log.Printf("[App] Warning: %v", missing)
	return len(missing.Missing)
}

// openStorage 打开 gdata 存储；失败时返回 nil，设置与得分只保存在内存中
func openStorage() *gdata.Manager {
	if dir, err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	} else if dir != "" {
		log.Printf("[App] Storage directory: %s", dir)
	}

	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (scores will not persist)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.forwardPlatformEvents()
	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右留黑边，并使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// State 返回跨场景共享的服务
func (a *App) State() *game.GameState {
	return a.state
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// SceneManager 返回场景管理器
func (a *App) SceneManager() *game.SceneManager {
	return a.sceneManager
}

// Interrupt 平台回调：跟踪会话被中断，可在任意线程调用
func (a *App) Interrupt(reason string) {
	a.platform.Push(event.SessionInterrupted(reason))
}

// InterruptionEnded 平台回调：中断结束，可在任意线程调用
func (a *App) InterruptionEnded() {
	a.platform.Push(event.SessionResumed())
}

// forwardPlatformEvents 把平台事件转交给当前的游戏场景
// 不在游戏界面时丢弃
func (a *App) forwardPlatformEvents() {
	events := a.platform.Drain()
	scene, ok := a.sceneManager.GetCurrentScene().(*scenes.GameScene)
	if !ok {
		return
	}
	for _, e := range events {
		switch e.Type {
		case event.TypeSessionInterrupted:
			reason, _ := e.Payload.(string)
			scene.Tracker().Interrupt(reason)
		case event.TypeSessionResumed:
			scene.Tracker().InterruptionEnded()
		}
	}
}
