package tracking

import (
	"log"

	"github.com/gonewx/armadness/pkg/event"
)

// State 跟踪会话状态
type State int

const (
	// StateIdle 尚未运行
	StateIdle State = iota
	// StateRunning 正在跟踪
	StateRunning
	// StatePaused 已暂停（离开游戏界面）
	StatePaused
	// StateInterrupted 被外部中断（来电、切后台、跟踪失败）
	StateInterrupted
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}

// Session 跟踪会话控制器
// 会话回调（Interrupt / InterruptionEnded / Fail）可能来自平台线程，
// 因此它们只把事件推入队列；状态字段由主循环通过 Apply 修改。
type Session struct {
	provider PoseProvider
	queue    *event.Queue
	state    State
}

// NewSession 创建会话
func NewSession(provider PoseProvider, queue *event.Queue) *Session {
	return &Session{
		provider: provider,
		queue:    queue,
		state:    StateIdle,
	}
}

// Run 开始（或重新开始）跟踪
func (s *Session) Run() {
	s.state = StateRunning
	log.Printf("[Session] Tracking started")
}

// Pause 暂停跟踪（离开游戏界面时调用）
func (s *Session) Pause() {
	if s.state == StateIdle {
		return
	}
	s.state = StatePaused
	log.Printf("[Session] Tracking paused")
}

// State 返回当前状态
func (s *Session) State() State {
	return s.state
}

// Interrupt 平台回调：会话被中断
func (s *Session) Interrupt(reason string) {
	s.queue.Push(event.SessionInterrupted(reason))
}

// InterruptionEnded 平台回调：中断结束
func (s *Session) InterruptionEnded() {
	s.queue.Push(event.SessionResumed())
}

// Fail 平台回调：跟踪失败，按中断处理
func (s *Session) Fail(err error) {
	log.Printf("[Session] Tracking failed: %v", err)
	s.queue.Push(event.SessionInterrupted(err.Error()))
}

// Apply 在主循环中应用会话事件
func (s *Session) Apply(e event.Event) {
	switch e.Type {
	case event.TypeSessionInterrupted:
		if s.state == StateRunning {
			s.state = StateInterrupted
			log.Printf("[Session] Interrupted: %v", e.Payload)
		}
	case event.TypeSessionResumed:
		if s.state == StateInterrupted {
			s.state = StateRunning
			log.Printf("[Session] Interruption ended")
		}
	}
}

// CurrentPose 只有在运行状态下才返回位姿
func (s *Session) CurrentPose() (Pose, bool) {
	if s.state != StateRunning || s.provider == nil {
		return Pose{}, false
	}
	return s.provider.CurrentPose()
}
