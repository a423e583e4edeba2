package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ParticleComponent 爆炸粒子
// 位置保存在 TransformComponent 中，这里只存运动和外观随时间变化的数据
type ParticleComponent struct {
	Velocity mgl64.Vec3 // 米/秒
	Age      float64    // 已存活时间（秒）
	Lifetime float64    // 总寿命（秒）
	Size     float64    // 屏幕半径基准（像素，距离1米时）
	Color    color.RGBA
}

// Alpha 根据剩余寿命线性淡出
func (p *ParticleComponent) Alpha() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	a := 1 - p.Age/p.Lifetime
	if a < 0 {
		return 0
	}
	return a
}
