package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/components"
	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/ecs"
	"github.com/gonewx/armadness/pkg/types"
	"github.com/gonewx/armadness/pkg/world"
)

// SoundPlayer 播放一次性音效
// *game.AudioManager 实现了该接口；音效不可用时返回 false
type SoundPlayer interface {
	PlaySound(id string) bool
}

// ProjectileLauncher 从相机位置发射投射物
type ProjectileLauncher struct {
	world  *world.World
	config *config.GameConfig
	sounds SoundPlayer
}

// NewProjectileLauncher 创建发射器；sounds 可以为 nil
func NewProjectileLauncher(w *world.World, cfg *config.GameConfig, sounds SoundPlayer) *ProjectileLauncher {
	return &ProjectileLauncher{world: w, config: cfg, sounds: sounds}
}

// UserVector 返回当前的发射方向与发射位置
// 位姿不可用时使用配置中的回退值（默认朝 -Z，位于相机前 0.2 米）
func (l *ProjectileLauncher) UserVector() (direction, position mgl64.Vec3) {
	if l.world.Pose != nil {
		if pose, ok := l.world.Pose.CurrentPose(); ok {
			return pose.Direction(), pose.Position()
		}
	}
	return l.config.Tracking.DefaultDirection.Vec3(), l.config.Tracking.DefaultPosition.Vec3()
}

// Fire 发射一枚投射物，返回新实体ID
// 未配置的变体不会生成任何实体，返回 ecs.InvalidEntity
func (l *ProjectileLauncher) Fire(kind types.ProjectileKind) ecs.EntityID {
	pc, ok := l.config.Projectile(kind)
	if !ok {
		log.Printf("[ProjectileLauncher] Warning: no config for projectile %s", kind)
		return ecs.InvalidEntity
	}

	direction, position := l.UserVector()

	em := l.world.Entities
	id := em.CreateEntity()
	em.AddComponent(id, &components.EntityKindComponent{Kind: types.KindProjectile, Projectile: kind})
	em.AddComponent(id, &components.NameComponent{DisplayName: pc.DisplayName, ModelID: pc.ModelID})
	em.AddComponent(id, &components.TransformComponent{Position: position, Scale: pc.Scale})
	em.AddComponent(id, &components.PhysicsBodyComponent{
		Category:        types.CategoryProjectile,
		CollisionMask:   types.CategoryTarget,
		ContactTestMask: types.CategoryTarget,
		Mass:            1,
		Radius:          pc.Radius,
	})
	if pc.LifetimeSeconds > 0 {
		em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: pc.LifetimeSeconds})
	}

	// 只施加一次冲量；偏心的施力点只带来自旋
	l.world.Physics.ApplyImpulse(id, direction.Mul(pc.ImpulseScale), pc.ApplicationPoint.Vec3())

	if l.sounds != nil && pc.SoundID != "" {
		l.sounds.PlaySound(pc.SoundID)
	}

	log.Printf("[ProjectileLauncher] Fired %s (entity %d) from %v towards %v", kind, id, position, direction)
	return id
}
