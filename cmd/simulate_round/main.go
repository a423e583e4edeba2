// simulate_round 无界面模拟一整局，用于验证计分与物理参数
//
// 每隔 -interval 秒随机转动视角并发射一枚投射物，以 60 TPS 推进整局，
// 最后打印得分与剩余靶子数量。
//
//	go run ./cmd/simulate_round -seed 7 -interval 0.25 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/event"
	"github.com/gonewx/armadness/pkg/game"
	"github.com/gonewx/armadness/pkg/systems"
	"github.com/gonewx/armadness/pkg/tracking"
	"github.com/gonewx/armadness/pkg/types"
	"github.com/gonewx/armadness/pkg/world"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 1, "随机种子")
	configPath = flag.String("config", config.DefaultGameConfigPath, "玩法配置路径")
	interval   = flag.Float64("interval", 0.5, "发射间隔（秒）")
)

const tps = 60

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	look := tracking.NewLookProvider()
	w := world.New(look, rng)

	session := game.NewGameSession(cfg.Round.DurationSeconds)
	particles := systems.NewParticleSystem(w, cfg.Particles)
	collisions := systems.NewCollisionHandler(w, session, particles, nil, cfg.Audio.ExplosionSound)
	launcher := systems.NewProjectileLauncher(w, cfg, nil)
	lifetime := systems.NewLifetimeSystem(w.Entities)
	timer := systems.NewRoundTimer(cfg.Round.DurationSeconds)
	store := game.NewScoreStore(nil)

	timer.OnExpired(func() {
		session.IsRunning = false
		if err := store.StoreRecord(session.Record()); err != nil {
			fmt.Fprintf(os.Stderr, "保存得分失败: %v\n", err)
		}
	})

	w.Physics.SetContactListener(collisions.HandleContact)
	systems.NewWorldPopulator(w, cfg.Targets).Populate()

	shots, hits := 0, 0
	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.TypeFire, func(e event.Event) {
		launcher.Fire(e.Payload.(types.ProjectileKind))
		shots++
	})
	dispatcher.Subscribe(event.TypeTimerTick, func(event.Event) {
		timer.Tick()
		session.SecondsRemaining = timer.Remaining()
	})
	dispatcher.Subscribe(event.TypeContact, func(e event.Event) {
		if collisions.Apply(e.Payload.(event.Contact)) > 0 {
			hits++
		}
	})

	var ticks systems.TickAccumulator
	dt := 1.0 / tps
	untilShot := 0.0

	session.IsRunning = true
	timer.Start()
	for session.IsRunning {
		untilShot -= dt
		if untilShot <= 0 {
			untilShot = *interval
			look.Rotate(rng.Float64()*0.6-0.3, rng.Float64()*0.2-0.1)
			kind := types.ProjectileBanana
			if rng.Intn(2) == 1 {
				kind = types.ProjectileAxe
			}
			w.Events.Push(event.Fire(kind))
		}

		for n := ticks.Add(dt); n > 0; n-- {
			w.Events.Push(event.TimerTick())
		}
		w.Physics.Step(dt)
		dispatcher.Pump(w.Events)
		particles.Update(dt)
		lifetime.Update(dt)
		w.Entities.RemoveMarkedEntities()
	}

	targets, sharks := systems.CountKinds(w.Entities)
	stored, _ := store.Load()
	fmt.Printf("射击 %d 次，命中 %d 次，得分 %d（已保存 %d）\n", shots, hits, session.Score, stored)
	fmt.Printf("剩余靶子 %d，鲨鱼 %d\n", targets, sharks)
}
