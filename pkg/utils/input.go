// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}

// LookDrag 把按住拖动转换为每帧的位移，用于转动视角
type LookDrag struct {
	active       bool
	lastX, lastY int
}

// Feed 输入当前帧的指针状态，返回相对上一帧的位移
// 按下的第一帧和松开时位移为 0
func (d *LookDrag) Feed(pressed bool, x, y int) (dx, dy int) {
	if !pressed {
		d.active = false
		return 0, 0
	}
	if d.active {
		dx, dy = x-d.lastX, y-d.lastY
	}
	d.active = true
	d.lastX, d.lastY = x, y
	return dx, dy
}

// Update 读取当前指针状态并返回位移
func (d *LookDrag) Update() (dx, dy int) {
	pressed, x, y := GetPointerState()
	return d.Feed(pressed, x, y)
}

// Reset 结束当前拖动
func (d *LookDrag) Reset() {
	d.active = false
}
