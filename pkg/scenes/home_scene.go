package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/game"
	"github.com/gonewx/armadness/pkg/utils"
)

var (
	colorHomeBackground = color.RGBA{R: 16, G: 20, B: 32, A: 255}
	colorScore          = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	colorHint           = color.RGBA{R: 170, G: 180, B: 200, A: 255}
)

// HomeScene 主界面：标题、开始按钮、上一局得分
type HomeScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager

	playButton *Button
	titleFace  text.Face
	labelFace  text.Face
	hintFace   text.Face

	lastScore int
	hasScore  bool
	hovered   bool
}

// NewHomeScene 创建主界面
func NewHomeScene(state *game.GameState, sm *game.SceneManager) *HomeScene {
	return &HomeScene{
		state:        state,
		sceneManager: sm,
		playButton: &Button{
			Label: "Play",
			X:     (config.GameWindowWidth - config.PlayButtonWidth) / 2,
			Y:     config.GameWindowHeight/2 - config.PlayButtonHeight/2,
			W:     config.PlayButtonWidth,
			H:     config.PlayButtonHeight,
		},
		titleFace: loadFace(state.Resources, 56),
		labelFace: loadFace(state.Resources, 28),
		hintFace:  loadFace(state.Resources, 16),
	}
}

// OnEnter 每次显示主界面时重新读取得分
func (s *HomeScene) OnEnter() {
	s.lastScore, s.hasScore = s.state.Scores.Load()
	if s.hasScore {
		log.Printf("[HomeScene] Last score: %d", s.lastScore)
	}
}

// OnExit 实现 game.Lifecycle
func (s *HomeScene) OnExit() {}

// ScoreLabel 主界面的得分文字；没有记录时为空
func (s *HomeScene) ScoreLabel() string {
	if !s.hasScore {
		return ""
	}
	return fmt.Sprintf("Score: %d", s.lastScore)
}

// Update 处理开始按钮与快捷键
func (s *HomeScene) Update(deltaTime float64) {
	_, x, y := utils.GetPointerState()
	s.hovered = s.playButton.Contains(x, y)

	if clicked, cx, cy := utils.IsJustTouchedOrClicked(); clicked && s.playButton.Contains(cx, cy) {
		s.play()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.play()
		return
	}

	// M 切换背景音乐开关
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.toggleMusic()
	}
}

func (s *HomeScene) play() {
	log.Printf("[HomeScene] Play pressed")
	s.sceneManager.Navigate(game.SceneGame)
}

func (s *HomeScene) toggleMusic() {
	settings := s.state.Settings
	settings.SetMusicEnabled(!settings.GetSettings().MusicEnabled)
	if err := settings.Save(); err != nil {
		log.Printf("[HomeScene] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制主界面
func (s *HomeScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorHomeBackground)

	cx := float64(config.GameWindowWidth) / 2
	utils.DrawCenteredText(screen, "AR Madness", s.titleFace, cx, 140, colorText)
	s.playButton.Draw(screen, s.labelFace, s.hovered)

	if label := s.ScoreLabel(); label != "" {
		utils.DrawCenteredText(screen, label, s.labelFace, cx, s.playButton.Y+s.playButton.H+60, colorScore)
	}

	music := "on"
	if !s.state.Settings.GetSettings().MusicEnabled {
		music = "off"
	}
	utils.DrawCenteredText(screen, "M: music "+music, s.hintFace, cx, float64(config.GameWindowHeight)-30, colorHint)
}
