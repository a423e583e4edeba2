package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/components"
	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/ecs"
	"github.com/gonewx/armadness/pkg/world"
)

// ParticleSystem 生成并推进爆炸粒子
type ParticleSystem struct {
	world   *world.World
	effects map[string]config.ParticleConfig
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(w *world.World, effects map[string]config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{world: w, effects: effects}
}

// SpawnBurst 在 origin 处生成名为 effect 的粒子爆发，返回生成的粒子数
func (s *ParticleSystem) SpawnBurst(effect string, origin mgl64.Vec3) int {
	pc, ok := s.effects[effect]
	if !ok {
		log.Printf("[ParticleSystem] Warning: unknown effect %q", effect)
		return 0
	}

	c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if len(pc.Color) >= 3 {
		c = color.RGBA{R: pc.Color[0], G: pc.Color[1], B: pc.Color[2], A: 255}
	}

	em := s.world.Entities
	for i := 0; i < pc.Count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &components.TransformComponent{Position: origin, Scale: 1})
		em.AddComponent(id, &components.ParticleComponent{
			Velocity: s.randomDirection().Mul(pc.Speed * (0.5 + 0.5*s.world.Rand.Float64())),
			Lifetime: pc.LifetimeSeconds,
			Size:     pc.Size,
			Color:    c,
		})
	}
	return pc.Count
}

// randomDirection 单位球面上的均匀随机方向
func (s *ParticleSystem) randomDirection() mgl64.Vec3 {
	z := s.world.RandomFloat(-1, 1)
	theta := s.world.RandomFloat(0, 2*math.Pi)
	r := math.Sqrt(1 - z*z)
	return mgl64.Vec3{r * math.Cos(theta), r * math.Sin(theta), z}
}

// Update 推进粒子位置与年龄，寿命结束的粒子标记删除
func (s *ParticleSystem) Update(deltaTime float64) {
	em := s.world.Entities
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.TransformComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		p.Age += deltaTime
		if p.Age >= p.Lifetime {
			em.DestroyEntity(id)
			continue
		}
		tr.Position = tr.Position.Add(p.Velocity.Mul(deltaTime))
	}
}
