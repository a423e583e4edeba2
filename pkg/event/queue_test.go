package event

import (
	"sync"
	"testing"

	"github.com/gonewx/armadness/pkg/types"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(TimerTick())
	q.Push(ContactBetween(1, 2))
	q.Push(Fire(types.ProjectileAxe))

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain() returned %d events, want 3", len(events))
	}

	want := []Type{TypeTimerTick, TypeContact, TypeFire}
	for i, e := range events {
		if e.Type != want[i] {
			t.Errorf("event %d: got %v, want %v", i, e.Type, want[i])
		}
	}

	if c := events[1].Payload.(Contact); c.A != 1 || c.B != 2 {
		t.Errorf("contact payload = %+v", c)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, Len() = %d", q.Len())
	}
	if q.Drain() != nil {
		t.Error("Drain() on empty queue should return nil")
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(ContactBetween(1, 2))
			}
		}()
	}
	wg.Wait()

	if got := len(q.Drain()); got != producers*perProducer {
		t.Errorf("drained %d events, want %d", got, producers*perProducer)
	}
}

func TestQueueClose(t *testing.T) {
	q := NewQueue()
	q.Push(TimerTick())
	q.Close()

	if q.Push(TimerTick()) {
		t.Error("Push after Close should return false")
	}
	if q.Len() != 0 {
		t.Errorf("closed queue should be empty, Len() = %d", q.Len())
	}
}

func TestDispatcherPumpOrder(t *testing.T) {
	q := NewQueue()
	d := NewDispatcher()

	var order []Type
	d.Subscribe(TypeTimerTick, func(e Event) { order = append(order, e.Type) })
	d.Subscribe(TypeContact, func(e Event) {
		order = append(order, e.Type)
		// 处理过程中产生的事件留到下一轮
		q.Push(TimerTick())
	})

	q.Push(ContactBetween(3, 4))
	q.Push(TimerTick())

	if n := d.Pump(q); n != 2 {
		t.Errorf("Pump() = %d, want 2", n)
	}
	if len(order) != 2 || order[0] != TypeContact || order[1] != TypeTimerTick {
		t.Errorf("dispatch order = %v", order)
	}
	if q.Len() != 1 {
		t.Errorf("event pushed during dispatch should stay queued, Len() = %d", q.Len())
	}
}
