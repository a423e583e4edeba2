package systems

import (
	"log"

	"github.com/gonewx/armadness/pkg/components"
	"github.com/gonewx/armadness/pkg/ecs"
	"github.com/gonewx/armadness/pkg/event"
	"github.com/gonewx/armadness/pkg/game"
	"github.com/gonewx/armadness/pkg/types"
	"github.com/gonewx/armadness/pkg/world"
)

// ExplodeEffect 命中时的粒子效果名
const ExplodeEffect = "Explode"

// CollisionHandler 处理投射物与靶子的接触
//
// 物理世界可能在任意 goroutine 上回调 HandleContact，这里只把接触事件放进队列；
// 计分和删除实体都在主循环里通过 Apply 完成。
type CollisionHandler struct {
	world          *world.World
	session        *game.GameSession
	particles      *ParticleSystem
	sounds         SoundPlayer
	explosionSound string
}

// NewCollisionHandler 创建碰撞处理器；particles 和 sounds 可以为 nil
func NewCollisionHandler(w *world.World, session *game.GameSession, particles *ParticleSystem, sounds SoundPlayer, explosionSound string) *CollisionHandler {
	return &CollisionHandler{
		world:          w,
		session:        session,
		particles:      particles,
		sounds:         sounds,
		explosionSound: explosionSound,
	}
}

// HandleContact 物理世界的接触回调，线程安全
func (h *CollisionHandler) HandleContact(a, b ecs.EntityID) {
	h.world.Events.Push(event.ContactBetween(a, b))
}

// Apply 在主循环中结算一次接触，返回本次加的分数
// 任意一方已经被删除、或双方都不是靶子时不做任何修改
func (h *CollisionHandler) Apply(c event.Contact) int {
	em := h.world.Entities
	if !em.Exists(c.A) || !em.Exists(c.B) {
		return 0
	}

	bodyA, okA := ecs.GetComponent[*components.PhysicsBodyComponent](em, c.A)
	bodyB, okB := ecs.GetComponent[*components.PhysicsBodyComponent](em, c.B)
	if !okA || !okB {
		return 0
	}
	if bodyA.Category != types.CategoryTarget && bodyB.Category != types.CategoryTarget {
		return 0
	}

	points := types.ScoreFor(kindOf(em, c.A), kindOf(em, c.B))
	h.session.AddScore(points)

	if tr, ok := ecs.GetComponent[*components.TransformComponent](em, c.B); ok && h.particles != nil {
		h.particles.SpawnBurst(ExplodeEffect, tr.Position)
	}
	if h.sounds != nil && h.explosionSound != "" {
		h.sounds.PlaySound(h.explosionSound)
	}

	em.DestroyEntity(c.A)
	em.DestroyEntity(c.B)

	log.Printf("[CollisionHandler] Hit %d <-> %d: +%d (score %d)", c.A, c.B, points, h.session.Score)
	return points
}

func kindOf(em *ecs.EntityManager, id ecs.EntityID) types.EntityKind {
	if k, ok := ecs.GetComponent[*components.EntityKindComponent](em, id); ok {
		return k.Kind
	}
	return types.KindUnknown
}
