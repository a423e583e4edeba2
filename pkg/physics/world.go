// Package physics 定义物理世界接口，并提供一个简化的运动学实现
//
// 完整的刚体模拟由平台物理引擎负责；KinematicWorld 只做：
//   - 冲量 -> 线速度/角速度
//   - 速度积分（可选重力）
//   - 球形包围体接触检测，按类别掩码过滤后通知 ContactListener
//
// 不做碰撞响应（反弹、摩擦），因为所有有效接触都会让双方被移除。
package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/ecs"
)

// ContactListener 接触开始回调
// 实现者必须允许在任意 goroutine 中被调用
type ContactListener func(a, b ecs.EntityID)

// World 物理世界
type World interface {
	// ApplyImpulse 在刚体局部坐标 at 处施加冲量（N·s）
	ApplyImpulse(id ecs.EntityID, impulse, at mgl64.Vec3)
	// Step 推进模拟 dt 秒
	Step(dt float64)
	// SetContactListener 设置接触回调
	SetContactListener(l ContactListener)
}
