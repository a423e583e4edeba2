// Package event 提供游戏主循环使用的类型化事件队列
//
// 物理接触回调、AR 会话回调可能在后台 goroutine 中触发，
// 它们只负责 Push 事件；所有对会话状态和界面状态的修改都在主循环 Drain 之后进行。
package event

import (
	"github.com/gonewx/armadness/pkg/ecs"
	"github.com/gonewx/armadness/pkg/types"
)

// Type 事件类型
type Type int

const (
	// TypeTimerTick 回合计时器经过一秒
	TypeTimerTick Type = iota
	// TypeContact 物理世界报告两个实体接触
	TypeContact
	// TypeSessionInterrupted AR 跟踪会话被中断（来电、切后台、跟踪失败）
	TypeSessionInterrupted
	// TypeSessionResumed AR 跟踪会话中断结束
	TypeSessionResumed
	// TypeFire 玩家按下发射按钮
	TypeFire
)

// String 返回事件类型名称
func (t Type) String() string {
	switch t {
	case TypeTimerTick:
		return "TimerTick"
	case TypeContact:
		return "Contact"
	case TypeSessionInterrupted:
		return "SessionInterrupted"
	case TypeSessionResumed:
		return "SessionResumed"
	case TypeFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// Event 队列中的一条事件
// Payload 的具体类型由 Type 决定：
//   - TypeContact: Contact
//   - TypeFire: types.ProjectileKind
//   - TypeSessionInterrupted: string（中断原因）
//   - 其他: nil
type Event struct {
	Type    Type
	Payload interface{}
}

// Contact 接触事件负载
type Contact struct {
	A, B ecs.EntityID
}

// TimerTick 构造计时事件
func TimerTick() Event {
	return Event{Type: TypeTimerTick}
}

// ContactBetween 构造接触事件
func ContactBetween(a, b ecs.EntityID) Event {
	return Event{Type: TypeContact, Payload: Contact{A: a, B: b}}
}

// SessionInterrupted 构造会话中断事件
func SessionInterrupted(reason string) Event {
	return Event{Type: TypeSessionInterrupted, Payload: reason}
}

// SessionResumed 构造会话恢复事件
func SessionResumed() Event {
	return Event{Type: TypeSessionResumed}
}

// Fire 构造发射事件
func Fire(kind types.ProjectileKind) Event {
	return Event{Type: TypeFire, Payload: kind}
}
