package systems

import "log"

// RoundTimer 回合倒计时
//
// 状态：剩余秒数 + 是否运行。运行中每次 Tick 减一；
// 减到 0 时停止并触发一次 onExpired，之后的 Tick 都是空操作。
// Reset 恢复初始值并停止，没有单独的暂停/继续（会话中断由调用方停止发送 Tick）。
type RoundTimer struct {
	duration  int
	remaining int
	running   bool
	expired   bool
	onExpired func()
}

// NewRoundTimer 创建倒计时器（未启动）
func NewRoundTimer(durationSeconds int) *RoundTimer {
	return &RoundTimer{
		duration:  durationSeconds,
		remaining: durationSeconds,
	}
}

// OnExpired 设置到期回调
func (t *RoundTimer) OnExpired(fn func()) {
	t.onExpired = fn
}

// Start 开始倒计时；已经到期的计时器需要先 Reset
func (t *RoundTimer) Start() {
	if t.expired {
		return
	}
	t.running = true
}

// Tick 经过一秒；返回本次调用是否改变了剩余时间
func (t *RoundTimer) Tick() bool {
	if !t.running {
		return false
	}

	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		t.expired = true
		log.Printf("[RoundTimer] Time is up")
		if t.onExpired != nil {
			t.onExpired()
		}
	}
	return true
}

// Reset 恢复到初始秒数并停止
func (t *RoundTimer) Reset() {
	t.remaining = t.duration
	t.running = false
	t.expired = false
}

// Remaining 剩余秒数
func (t *RoundTimer) Remaining() int {
	return t.remaining
}

// Running 是否正在倒计时
func (t *RoundTimer) Running() bool {
	return t.running
}

// Expired 是否已经到期
func (t *RoundTimer) Expired() bool {
	return t.expired
}

// TickAccumulator 把每帧的 deltaTime 累积成整秒
type TickAccumulator struct {
	elapsed float64
}

// Add 累加时间，返回新凑满的整秒数
func (a *TickAccumulator) Add(deltaTime float64) int {
	a.elapsed += deltaTime
	ticks := 0
	for a.elapsed >= 1.0 {
		a.elapsed -= 1.0
		ticks++
	}
	return ticks
}

// Reset 清空累积时间
func (a *TickAccumulator) Reset() {
	a.elapsed = 0
}
