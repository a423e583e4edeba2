package components

// SpinComponent 永久旋转动画
// 靶子生成后每秒绕 Y 轴旋转 RadiansPerSecond 弧度，没有结束时间
type SpinComponent struct {
	RadiansPerSecond float64
}
