package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 实体在世界空间中的位置与姿态
// 坐标单位为米，Y 轴向上，相机默认朝向 -Z
type TransformComponent struct {
	Position mgl64.Vec3 // 世界坐标
	Scale    float64    // 模型缩放（渲染提示，同时影响碰撞半径）
	Yaw      float64    // 绕 Y 轴的旋转角（弧度）
	Roll     float64    // 绕 Z 轴的旋转角（弧度），投射物受偏心冲量后产生
}
