// Package world 定义一局游戏共享的上下文对象
//
// 生成器、发射器、碰撞处理器都显式接收 *World，
// 不再通过全局场景图访问实体、物理世界和随机数。
package world

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/ecs"
	"github.com/gonewx/armadness/pkg/event"
	"github.com/gonewx/armadness/pkg/physics"
	"github.com/gonewx/armadness/pkg/tracking"
)

// World 一局游戏的运行上下文
type World struct {
	Entities *ecs.EntityManager
	Physics  physics.World
	Events   *event.Queue
	Pose     tracking.PoseProvider
	Rand     *rand.Rand
}

// New 使用内置运动学物理世界创建上下文
// rng 为 nil 时使用固定种子 1，保证测试可复现
func New(pose tracking.PoseProvider, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	em := ecs.NewEntityManager()
	return &World{
		Entities: em,
		Physics:  physics.NewKinematicWorld(em),
		Events:   event.NewQueue(),
		Pose:     pose,
		Rand:     rng,
	}
}

// RandomFloat 返回 [min, max) 区间内的均匀随机数
func (w *World) RandomFloat(min, max float64) float64 {
	return w.Rand.Float64()*(max-min) + min
}

// RandomPoint 返回 min/max 包围盒内的均匀随机点
func (w *World) RandomPoint(min, max mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		w.RandomFloat(min[0], max[0]),
		w.RandomFloat(min[1], max[1]),
		w.RandomFloat(min[2], max[2]),
	}
}
