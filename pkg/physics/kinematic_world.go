package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/components"
	"github.com/gonewx/armadness/pkg/ecs"
)

// DefaultGravity 标准重力加速度（米/秒²）
var DefaultGravity = mgl64.Vec3{0, -9.8, 0}

type pairKey struct {
	a, b ecs.EntityID
}

func makePair(a, b ecs.EntityID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// KinematicWorld 基于 EntityManager 的简化物理世界
// 参与模拟的实体必须同时拥有 TransformComponent 和 PhysicsBodyComponent
type KinematicWorld struct {
	em       *ecs.EntityManager
	gravity  mgl64.Vec3
	listener ContactListener

	// 正在接触中的实体对，保证每对接触只通知一次
	touching map[pairKey]bool
}

// NewKinematicWorld 创建物理世界
func NewKinematicWorld(em *ecs.EntityManager) *KinematicWorld {
	return &KinematicWorld{
		em:       em,
		gravity:  DefaultGravity,
		touching: make(map[pairKey]bool),
	}
}

// SetGravity 设置重力
func (w *KinematicWorld) SetGravity(g mgl64.Vec3) {
	w.gravity = g
}

// SetContactListener 实现 World
func (w *KinematicWorld) SetContactListener(l ContactListener) {
	w.listener = l
}

// ApplyImpulse 实现 World
// 线速度变化 = 冲量 / 质量；偏心施加时角速度变化 = (at × 冲量) / 转动惯量（实心球近似）
func (w *KinematicWorld) ApplyImpulse(id ecs.EntityID, impulse, at mgl64.Vec3) {
	body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, id)
	if !ok {
		return
	}

	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}
	body.Velocity = body.Velocity.Add(impulse.Mul(1 / mass))

	torque := at.Cross(impulse)
	if body.Radius > 0 && torque.Len() > 0 {
		inertia := 0.4 * mass * body.Radius * body.Radius
		body.AngularVelocity = body.AngularVelocity.Add(torque.Mul(1 / inertia))
	}
}

// Step 实现 World
func (w *KinematicWorld) Step(dt float64) {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.PhysicsBodyComponent](w.em)

	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TransformComponent](w.em, id)
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, id)

		if body.AffectedByGravity {
			body.Velocity = body.Velocity.Add(w.gravity.Mul(dt))
		}
		tr.Position = tr.Position.Add(body.Velocity.Mul(dt))
		tr.Yaw += body.AngularVelocity[1] * dt
		tr.Roll += body.AngularVelocity[2] * dt
	}

	w.detectContacts(ids)
}

// detectContacts 球-球重叠检测
func (w *KinematicWorld) detectContacts(ids []ecs.EntityID) {
	current := make(map[pairKey]bool)

	for i := 0; i < len(ids); i++ {
		bodyA, _ := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, ids[i])
		trA, _ := ecs.GetComponent[*components.TransformComponent](w.em, ids[i])

		for j := i + 1; j < len(ids); j++ {
			bodyB, _ := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, ids[j])

			if !ShouldReportContact(bodyA, bodyB) {
				continue
			}

			trB, _ := ecs.GetComponent[*components.TransformComponent](w.em, ids[j])
			reach := bodyA.Radius + bodyB.Radius
			if trA.Position.Sub(trB.Position).LenSqr() > reach*reach {
				continue
			}

			key := makePair(ids[i], ids[j])
			current[key] = true
			if w.touching[key] {
				continue
			}
			if w.listener != nil {
				w.listener(ids[i], ids[j])
			}
		}
	}

	w.touching = current
}

// ShouldReportContact 判断两个刚体接触时是否需要通知
// 任意一方的 ContactTestMask 包含另一方的 Category 即通知
func ShouldReportContact(a, b *components.PhysicsBodyComponent) bool {
	return a.ContactTestMask.Has(b.Category) || b.ContactTestMask.Has(a.Category)
}
