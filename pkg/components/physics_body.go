package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/types"
)

// PhysicsBodyComponent 物理刚体（球形近似）
//
// 掩码语义：
//   - Category: 本实体所属类别，必须恰好一位
//   - CollisionMask: 与哪些类别发生碰撞响应
//   - ContactTestMask: 与哪些类别接触时产生接触事件
//
// 两个实体 A、B 只要任意一方的 ContactTestMask 包含另一方的 Category，就会产生接触事件。
type PhysicsBodyComponent struct {
	Category        types.CollisionCategory
	CollisionMask   types.CollisionCategory
	ContactTestMask types.CollisionCategory

	Velocity        mgl64.Vec3 // 线速度（米/秒）
	AngularVelocity mgl64.Vec3 // 角速度（弧度/秒）
	Mass            float64    // 质量（千克），<=0 按 1 处理
	Radius          float64    // 碰撞球半径（米）

	AffectedByGravity bool
}
