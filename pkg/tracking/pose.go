// Package tracking 封装相机位姿跟踪会话
//
// 真正的 AR 世界跟踪由平台提供，本包只定义位姿的来源接口和会话生命周期。
// 桌面端使用 LookProvider（鼠标/键盘控制朝向）代替设备跟踪。
package tracking

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose 相机在世界空间中的 4x4 变换矩阵（列主序，与 mgl64 一致）
type Pose struct {
	Transform mgl64.Mat4
}

// Direction 相机朝向：变换矩阵 Z 轴取反
func (p Pose) Direction() mgl64.Vec3 {
	return p.Transform.Col(2).Vec3().Mul(-1)
}

// Position 相机在世界中的位置：变换矩阵的平移部分
func (p Pose) Position() mgl64.Vec3 {
	return p.Transform.Col(3).Vec3()
}

// View 返回视图矩阵（世界 -> 相机）
func (p Pose) View() mgl64.Mat4 {
	return p.Transform.Inv()
}

// PoseFromYawPitch 由位置和偏航/俯仰角构造位姿
// yaw=0, pitch=0 时朝向 -Z
func PoseFromYawPitch(position mgl64.Vec3, yaw, pitch float64) Pose {
	rot := mgl64.HomogRotate3DY(yaw).Mul4(mgl64.HomogRotate3DX(pitch))
	return Pose{Transform: mgl64.Translate3D(position[0], position[1], position[2]).Mul4(rot)}
}

// PoseProvider 相机位姿来源
// 第二个返回值为 false 表示当前帧没有可用位姿（尚未初始化或跟踪丢失）
type PoseProvider interface {
	CurrentPose() (Pose, bool)
}

// LookProvider 桌面端的位姿来源：位置固定，朝向由输入累加
type LookProvider struct {
	position mgl64.Vec3
	yaw      float64
	pitch    float64
	ready    bool
}

// 俯仰角限制，避免翻转
const maxPitch = math.Pi/2 - 0.05

// NewLookProvider 创建位于原点、朝向 -Z 的位姿来源
func NewLookProvider() *LookProvider {
	return &LookProvider{ready: true}
}

// Rotate 累加偏航和俯仰角（弧度）
func (l *LookProvider) Rotate(dyaw, dpitch float64) {
	l.yaw = math.Mod(l.yaw+dyaw, 2*math.Pi)
	l.pitch += dpitch
	if l.pitch > maxPitch {
		l.pitch = maxPitch
	}
	if l.pitch < -maxPitch {
		l.pitch = -maxPitch
	}
}

// SetReady 模拟跟踪丢失/恢复
func (l *LookProvider) SetReady(ready bool) {
	l.ready = ready
}

// Angles 返回当前偏航和俯仰角
func (l *LookProvider) Angles() (yaw, pitch float64) {
	return l.yaw, l.pitch
}

// CurrentPose 实现 PoseProvider
func (l *LookProvider) CurrentPose() (Pose, bool) {
	if !l.ready {
		return Pose{}, false
	}
	return PoseFromYawPitch(l.position, l.yaw, l.pitch), true
}
