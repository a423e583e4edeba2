package systems

import (
	"math"

	"github.com/gonewx/armadness/pkg/components"
	"github.com/gonewx/armadness/pkg/ecs"
)

// SpinSystem 驱动靶子的永久旋转动画
type SpinSystem struct {
	entityManager *ecs.EntityManager
}

// NewSpinSystem 创建旋转系统
func NewSpinSystem(em *ecs.EntityManager) *SpinSystem {
	return &SpinSystem{entityManager: em}
}

// Update 推进旋转角，角度保持在 [0, 2π)
func (s *SpinSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.SpinComponent, *components.TransformComponent](s.entityManager) {
		spin, _ := ecs.GetComponent[*components.SpinComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		tr.Yaw = math.Mod(tr.Yaw+spin.RadiansPerSecond*deltaTime, 2*math.Pi)
		if tr.Yaw < 0 {
			tr.Yaw += 2 * math.Pi
		}
	}
}
