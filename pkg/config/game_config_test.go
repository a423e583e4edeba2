package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/armadness/pkg/types"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Round.DurationSeconds != 30 {
		t.Errorf("DurationSeconds = %d, want 30", cfg.Round.DurationSeconds)
	}
	if cfg.Targets.Count != 100 || cfg.Targets.HighValueInterval != 10 {
		t.Errorf("targets = %d/%d, want 100/10", cfg.Targets.Count, cfg.Targets.HighValueInterval)
	}
	if cfg.Targets.SpinRadiansPerSecond != math.Pi {
		t.Errorf("spin = %v, want pi", cfg.Targets.SpinRadiansPerSecond)
	}

	banana, ok := cfg.Projectile(types.ProjectileBanana)
	if !ok || banana.ImpulseScale != 4 || banana.SoundID != "SOUND_MONKEY" {
		t.Errorf("unexpected banana config: %+v", banana)
	}
	axe, ok := cfg.Projectile(types.ProjectileAxe)
	if !ok || axe.ImpulseScale != 4 || axe.ApplicationPoint.Vec3()[2] != 0.1 {
		t.Errorf("unexpected axe config: %+v", axe)
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
round:
  durationSeconds: 45
targets:
  count: 20
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Round.DurationSeconds != 45 {
					t.Errorf("DurationSeconds = %d, want 45", cfg.Round.DurationSeconds)
				}
				if cfg.Targets.Count != 20 {
					t.Errorf("Count = %d, want 20", cfg.Targets.Count)
				}
				if cfg.Targets.HighValueInterval != 10 {
					t.Errorf("HighValueInterval should keep default 10, got %d", cfg.Targets.HighValueInterval)
				}
			},
		},
		{
			name: "zero round duration",
			yamlContent: `
round:
  durationSeconds: 0
`,
			wantErr:     true,
			errContains: "durationSeconds",
		},
		{
			name: "inverted spawn bounds",
			yamlContent: `
targets:
  spawnMin: [5, 0, 0]
  spawnMax: [1, 1, 1]
`,
			wantErr:     true,
			errContains: "spawnMin[0]",
		},
		{
			name: "bad projectile impulse",
			yamlContent: `
projectiles:
  banana:
    impulseScale: 0
    radius: 0.1
  axe:
    impulseScale: 4
    radius: 0.1
`,
			wantErr:     true,
			errContains: "banana.impulseScale",
		},
		{
			name:        "malformed yaml",
			yamlContent: "round: [",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("round:\n  durationSeconds: 10\n"), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Round.DurationSeconds != 10 {
		t.Errorf("DurationSeconds = %d, want 10", cfg.Round.DurationSeconds)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestVec3ConfigShort(t *testing.T) {
	v := Vec3Config{1, 2}.Vec3()
	if v[0] != 1 || v[1] != 2 || v[2] != 0 {
		t.Errorf("Vec3() = %v, want [1 2 0]", v)
	}
}

// TestShippedGameConfig 仓库自带的 data/game.yaml 必须与默认值一致
func TestShippedGameConfig(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", DefaultGameConfigPath))
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}

	def := DefaultGameConfig()
	if cfg.Round.DurationSeconds != def.Round.DurationSeconds {
		t.Errorf("DurationSeconds = %d, want %d", cfg.Round.DurationSeconds, def.Round.DurationSeconds)
	}
	if cfg.Targets.Count != def.Targets.Count || cfg.Targets.HighValueInterval != def.Targets.HighValueInterval {
		t.Errorf("Targets = %+v, want %+v", cfg.Targets, def.Targets)
	}
	for _, kind := range []types.ProjectileKind{types.ProjectileBanana, types.ProjectileAxe} {
		got, _ := cfg.Projectile(kind)
		want, _ := def.Projectile(kind)
		if got.ImpulseScale != want.ImpulseScale || got.SoundID != want.SoundID || got.Scale != want.Scale {
			t.Errorf("%s: got %+v, want %+v", kind, got, want)
		}
	}
}
