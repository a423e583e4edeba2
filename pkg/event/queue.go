package event

import "sync"

// Queue 多生产者、单消费者的 FIFO 事件队列
//   - Push: 任意 goroutine 可调用
//   - Drain: 只由游戏主循环调用
type Queue struct {
	mu      sync.Mutex
	pending []Event
	closed  bool
}

// NewQueue 创建空队列
func NewQueue() *Queue {
	return &Queue{pending: make([]Event, 0, 16)}
}

// Push 追加一条事件；队列关闭后丢弃并返回 false
func (q *Queue) Push(e Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.pending = append(q.pending, e)
	return true
}

// Drain 取出全部待处理事件（按入队顺序），并清空队列
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]Event, 0, cap(out))
	return out
}

// Len 返回待处理事件数量
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close 关闭队列，之后的 Push 都会被丢弃（回合结束后晚到的物理回调）
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.pending = nil
}
