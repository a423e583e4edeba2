package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 通过资源ID播放音效和背景音乐
//   - 应用 SettingsManager 中的音量和开关
//   - 资源缺失或解码失败时只记录一次警告，之后静默跳过
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil

	soundPlayers   map[string]*audio.Player
	musicPlayers   map[string]*audio.Player
	failed         map[string]bool // 加载失败过的资源ID，不再重试
	currentMusic   *audio.Player
	currentMusicID string
}

// NewAudioManager 创建新的音频管理器
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		failed:          make(map[string]bool),
	}
}

// PlaySound 播放音效，返回是否真的播放了
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(soundID, false)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐；同一时间只有一首
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getPlayer(musicID, true)
	if player == nil {
		return false
	}

	player.SetVolume(am.getMusicVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s", musicID)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am == nil || am.currentMusic == nil {
		return
	}
	am.currentMusic.Pause()
	am.currentMusic = nil
	am.currentMusicID = ""
}

// PauseMusic 暂停当前背景音乐（会话中断时）
func (am *AudioManager) PauseMusic() {
	if am != nil && am.currentMusic != nil {
		am.currentMusic.Pause()
	}
}

// ResumeMusic 恢复当前背景音乐
func (am *AudioManager) ResumeMusic() {
	if am == nil || am.currentMusic == nil {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return
	}
	am.currentMusic.Play()
}

// Preload 预加载音效，避免首次播放时卡顿
func (am *AudioManager) Preload(soundIDs ...string) {
	if am == nil {
		return
	}
	for _, id := range soundIDs {
		am.getPlayer(id, false)
	}
}

// getPlayer 获取或加载播放器；失败的资源只警告一次
func (am *AudioManager) getPlayer(id string, loop bool) *audio.Player {
	cache := am.soundPlayers
	if loop {
		cache = am.musicPlayers
	}
	if player, ok := cache[id]; ok {
		return player
	}
	if am.failed[id] || am.resourceManager == nil {
		return nil
	}

	var (
		player *audio.Player
		err    error
	)
	if loop {
		player, err = am.resourceManager.LoadMusicByID(id)
	} else {
		player, err = am.resourceManager.LoadSoundByID(id)
	}
	if err != nil {
		am.failed[id] = true
		log.Printf("[AudioManager] Warning: %s unavailable, continuing without it: %v", id, err)
		return nil
	}

	cache[id] = player
	return player
}

func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return DefaultSettings().MusicVolume
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
