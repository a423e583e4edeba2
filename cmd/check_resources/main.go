// check_resources 检查资源清单与玩法配置
//
// 在仓库根目录运行：
//
//	go run ./cmd/check_resources
//	go run ./cmd/check_resources -config data/game.yaml -strict
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/game"
)

var (
	manifestPath = flag.String("manifest", "assets/config/resources.yaml", "资源清单路径")
	configPath   = flag.String("config", config.DefaultGameConfigPath, "玩法配置路径")
	strict       = flag.Bool("strict", false, "存在缺失资源时返回非零退出码")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ 玩法配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 玩法配置: %d 秒, %d 个靶子（每 %d 个一只鲨鱼）\n",
		cfg.Round.DurationSeconds, cfg.Targets.Count, cfg.Targets.HighValueInterval)

	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig(*manifestPath); err != nil {
		fmt.Printf("❌ 资源清单无效: %v\n", err)
		os.Exit(1)
	}

	// 配置中引用的资源ID必须在清单中声明
	undeclared := 0
	for _, id := range referencedIDs(cfg) {
		if _, ok := rm.ResourcePath(id); !ok {
			fmt.Printf("❌ 配置引用了未声明的资源: %s\n", id)
			undeclared++
		}
	}

	missing := 0
	if err := rm.CheckAssets(); err != nil {
		var assetErr *game.AssetMissingError
		if !errors.As(err, &assetErr) {
			fmt.Printf("❌ 资源检查失败: %v\n", err)
			os.Exit(1)
		}
		for _, m := range assetErr.Missing {
			fmt.Printf("⚠️  缺失 %-16s %s\n", m.ID, m.Path)
		}
		missing = len(assetErr.Missing)
	}

	if undeclared > 0 || (*strict && missing > 0) {
		os.Exit(1)
	}
	fmt.Printf("✅ 检查完成（缺失 %d 个资源）\n", missing)
}

// referencedIDs 玩法配置中出现的全部资源ID
func referencedIDs(cfg *config.GameConfig) []string {
	ids := []string{cfg.Audio.ExplosionSound, cfg.Audio.BackgroundMusic}
	for _, name := range []string{"banana", "axe"} {
		p := cfg.Projectiles[name]
		ids = append(ids, p.SoundID, p.ModelID)
	}

	out := ids[:0]
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
