package event

import "log"

// Handler 处理一条事件
type Handler func(e Event)

// Dispatcher 将事件按类型分发给已注册的处理函数
// 只在主循环中使用，不需要加锁
type Dispatcher struct {
	handlers map[Type][]Handler
}

// NewDispatcher 创建分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Type][]Handler)}
}

// Subscribe 注册处理函数
func (d *Dispatcher) Subscribe(t Type, h Handler) {
	d.handlers[t] = append(d.handlers[t], h)
}

// Dispatch 分发单条事件
func (d *Dispatcher) Dispatch(e Event) {
	hs, ok := d.handlers[e.Type]
	if !ok {
		log.Printf("[Dispatcher] No handler for event %s", e.Type)
		return
	}
	for _, h := range hs {
		h(e)
	}
}

// Pump 取出队列中的全部事件并按顺序分发，返回处理的事件数
// 处理函数在分发过程中 Push 的新事件留到下一次 Pump
func (d *Dispatcher) Pump(q *Queue) int {
	events := q.Drain()
	for _, e := range events {
		d.Dispatch(e)
	}
	return len(events)
}
