// Package events 提供同步、按顺序分发的游戏事件总线
//
// 事件在触发它的逻辑帧内、在调用方 goroutine 上同步分发给订阅者，
// 订阅者按订阅顺序依次收到事件。总线不是并发安全的，
// 所有 Fire/On 调用都必须发生在游戏逻辑线程上。
package events

import (
	"reflect"
)

// Subscription 订阅句柄，用于取消订阅
type Subscription interface {
	Unsubscribe()
}

type handler struct {
	id uint64
	fn func(any)
}

// Bus 事件总线
// 以事件的具体类型作为路由键
type Bus struct {
	handlers map[reflect.Type][]handler
	nextID   uint64
}

// NewBus 创建空的事件总线
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[reflect.Type][]handler),
		nextID:   1,
	}
}

type subscription struct {
	bus       *Bus
	eventType reflect.Type
	id        uint64
}

// Unsubscribe 取消订阅，重复调用无副作用
func (s *subscription) Unsubscribe() {
	if s.bus == nil {
		return
	}
	s.bus.remove(s.eventType, s.id)
	s.bus = nil
}

// On 订阅 E 类型的事件
//
// 参数：
//   - b: 事件总线
//   - fn: 事件处理函数
//
// 返回：
//   - Subscription: 订阅句柄，调用 Unsubscribe 后不再收到事件
func On[E any](b *Bus, fn func(E)) Subscription {
	t := reflect.TypeOf((*E)(nil)).Elem()
	id := b.nextID
	b.nextID++
	b.handlers[t] = append(b.handlers[t], handler{
		id: id,
		fn: func(ev any) { fn(ev.(E)) },
	})
	return &subscription{bus: b, eventType: t, id: id}
}

// Fire 同步分发事件
// 分发前复制处理函数列表，处理函数内部取消订阅不会影响本次分发
func (b *Bus) Fire(ev any) {
	hs := b.handlers[reflect.TypeOf(ev)]
	if len(hs) == 0 {
		return
	}
	snapshot := make([]handler, len(hs))
	copy(snapshot, hs)
	for _, h := range snapshot {
		h.fn(ev)
	}
}

// HandlerCount 返回某类事件的订阅者数量
func HandlerCount[E any](b *Bus) int {
	return len(b.handlers[reflect.TypeOf((*E)(nil)).Elem()])
}

func (b *Bus) remove(t reflect.Type, id uint64) {
	hs := b.handlers[t]
	for i, h := range hs {
		if h.id == id {
			// 新建切片，避免影响正在进行的分发快照
			next := make([]handler, 0, len(hs)-1)
			next = append(next, hs[:i]...)
			next = append(next, hs[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, t)
			} else {
				b.handlers[t] = next
			}
			return
		}
	}
}
