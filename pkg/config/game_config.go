package config

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/armadness/pkg/types"
)

// DefaultGameConfigPath 默认游戏配置文件路径
const DefaultGameConfigPath = "data/game.yaml"

// Vec3Config YAML 中的三维向量，写作 [x, y, z]
type Vec3Config []float64

// Vec3 转换为 mgl64.Vec3；长度不足时缺失分量按 0 处理
func (v Vec3Config) Vec3() mgl64.Vec3 {
	var out mgl64.Vec3
	for i := 0; i < 3 && i < len(v); i++ {
		out[i] = v[i]
	}
	return out
}

// GameConfig 游戏玩法配置（data/game.yaml）
type GameConfig struct {
	Round       RoundConfig                 `yaml:"round"`
	Targets     TargetConfig                `yaml:"targets"`
	Projectiles map[string]ProjectileConfig `yaml:"projectiles"` // 键为 "banana" / "axe"
	Tracking    TrackingConfig              `yaml:"tracking"`
	Particles   map[string]ParticleConfig   `yaml:"particles"` // 键为粒子效果名，如 "Explode"
	Audio       AudioConfig                 `yaml:"audio"`
}

// RoundConfig 回合计时
type RoundConfig struct {
	DurationSeconds int `yaml:"durationSeconds"`
}

// TargetConfig 靶子生成参数
type TargetConfig struct {
	Count                int        `yaml:"count"`
	HighValueInterval    int        `yaml:"highValueInterval"` // 每隔多少个生成一只鲨鱼
	SpawnMin             Vec3Config `yaml:"spawnMin"`
	SpawnMax             Vec3Config `yaml:"spawnMax"`
	SpinRadiansPerSecond float64    `yaml:"spinRadiansPerSecond"`
	BaseScale            float64    `yaml:"baseScale"`
	HighValueScale       float64    `yaml:"highValueScale"`
	BaseRadius           float64    `yaml:"baseRadius"`
	HighValueRadius      float64    `yaml:"highValueRadius"`
}

// ProjectileConfig 单种投射物参数
type ProjectileConfig struct {
	DisplayName      string     `yaml:"displayName"`
	ModelID          string     `yaml:"modelId"`
	SoundID          string     `yaml:"soundId"`
	Scale            float64    `yaml:"scale"`
	Radius           float64    `yaml:"radius"`
	ImpulseScale     float64    `yaml:"impulseScale"`
	ApplicationPoint Vec3Config `yaml:"applicationPoint"`
	LifetimeSeconds  float64    `yaml:"lifetimeSeconds"`
}

// TrackingConfig 相机位姿不可用时的回退值
type TrackingConfig struct {
	DefaultDirection Vec3Config `yaml:"defaultDirection"`
	DefaultPosition  Vec3Config `yaml:"defaultPosition"`
}

// ParticleConfig 爆炸粒子参数
type ParticleConfig struct {
	Count           int     `yaml:"count"`
	Speed           float64 `yaml:"speed"`
	LifetimeSeconds float64 `yaml:"lifetimeSeconds"`
	Size            float64 `yaml:"size"`
	Color           []uint8 `yaml:"color"` // [r, g, b]
}

// AudioConfig 音频资源ID
type AudioConfig struct {
	ExplosionSound  string `yaml:"explosionSound"`
	BackgroundMusic string `yaml:"backgroundMusic"`
}

// DefaultGameConfig 返回与原版玩法一致的默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Round: RoundConfig{DurationSeconds: 30},
		Targets: TargetConfig{
			Count:                100,
			HighValueInterval:    10,
			SpawnMin:             Vec3Config{-10, -4, -10},
			SpawnMax:             Vec3Config{10, 5, 10},
			SpinRadiansPerSecond: math.Pi,
			BaseScale:            0.02,
			HighValueScale:       0.3,
			BaseRadius:           0.35,
			HighValueRadius:      0.5,
		},
		Projectiles: map[string]ProjectileConfig{
			"banana": {
				DisplayName:      "banana",
				ModelID:          "MODEL_BANANA",
				SoundID:          "SOUND_MONKEY",
				Scale:            0.2,
				Radius:           0.15,
				ImpulseScale:     4,
				ApplicationPoint: Vec3Config{0.1, 0, 0},
				LifetimeSeconds:  6,
			},
			"axe": {
				DisplayName:      "axe",
				ModelID:          "MODEL_AXE",
				SoundID:          "SOUND_ROOSTER",
				Scale:            0.3,
				Radius:           0.2,
				ImpulseScale:     4,
				ApplicationPoint: Vec3Config{0, 0, 0.1},
				LifetimeSeconds:  6,
			},
		},
		Tracking: TrackingConfig{
			DefaultDirection: Vec3Config{0, 0, -1},
			DefaultPosition:  Vec3Config{0, 0, -0.2},
		},
		Particles: map[string]ParticleConfig{
			"Explode": {
				Count:           24,
				Speed:           2.5,
				LifetimeSeconds: 0.6,
				Size:            6,
				Color:           []uint8{255, 160, 40},
			},
		},
		Audio: AudioConfig{
			ExplosionSound:  "SOUND_EXPLOSION",
			BackgroundMusic: "SOUND_OVERTAKE",
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据
// 文件中未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Projectile 返回指定投射物变体的配置
func (c *GameConfig) Projectile(kind types.ProjectileKind) (ProjectileConfig, bool) {
	switch kind {
	case types.ProjectileBanana:
		p, ok := c.Projectiles["banana"]
		return p, ok
	case types.ProjectileAxe:
		p, ok := c.Projectiles["axe"]
		return p, ok
	}
	return ProjectileConfig{}, false
}

// Validate 验证配置的有效性
func (c *GameConfig) Validate() error {
	if c.Round.DurationSeconds <= 0 {
		return fmt.Errorf("round.durationSeconds must be > 0, got %d", c.Round.DurationSeconds)
	}

	t := c.Targets
	if t.Count < 0 {
		return fmt.Errorf("targets.count must be >= 0, got %d", t.Count)
	}
	if t.HighValueInterval <= 0 {
		return fmt.Errorf("targets.highValueInterval must be > 0, got %d", t.HighValueInterval)
	}
	if len(t.SpawnMin) != 3 || len(t.SpawnMax) != 3 {
		return fmt.Errorf("targets.spawnMin/spawnMax must have 3 components")
	}
	for i := 0; i < 3; i++ {
		if t.SpawnMin[i] > t.SpawnMax[i] {
			return fmt.Errorf("targets.spawnMin[%d]=%v is greater than spawnMax[%d]=%v", i, t.SpawnMin[i], i, t.SpawnMax[i])
		}
	}

	for _, name := range []string{"banana", "axe"} {
		p, ok := c.Projectiles[name]
		if !ok {
			return fmt.Errorf("projectiles.%s is missing", name)
		}
		if p.ImpulseScale <= 0 {
			return fmt.Errorf("projectiles.%s.impulseScale must be > 0, got %v", name, p.ImpulseScale)
		}
		if p.Radius <= 0 {
			return fmt.Errorf("projectiles.%s.radius must be > 0, got %v", name, p.Radius)
		}
	}

	if len(c.Tracking.DefaultDirection) != 3 || c.Tracking.DefaultDirection.Vec3().Len() == 0 {
		return fmt.Errorf("tracking.defaultDirection must be a non-zero 3-vector")
	}

	for name, p := range c.Particles {
		if p.Count < 0 || p.LifetimeSeconds <= 0 {
			return fmt.Errorf("particles.%s: count must be >= 0 and lifetimeSeconds > 0", name)
		}
	}

	return nil
}
