// Package event — синхронная шина событий игры: раунд сообщает о ходе
// игры, конфетти и звук подписываются.
package event

import "github.com/rs/zerolog/log"

// EventType — тип события
type EventType string

// Event — событие с необязательной полезной нагрузкой.
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher раздает события подписчикам в порядке подписки.
// Вызывается только из игрового цикла, поэтому блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]Listener
	sent      map[EventType]int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
		sent:      make(map[EventType]int),
	}
}

// Subscribe добавляет подписчика; повторная подписка игнорируется.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	if d.indexOf(eventType, listener) >= 0 {
		return
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает одного слушателя на несколько событий.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe убирает подписчика. Можно вызывать прямо из OnEvent.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	i := d.indexOf(eventType, listener)
	if i < 0 {
		return
	}
	old := d.listeners[eventType]
	next := make([]Listener, 0, len(old)-1)
	next = append(next, old[:i]...)
	d.listeners[eventType] = append(next, old[i+1:]...)
}

// Dispatch отправляет событие. Nil-диспетчер молча ничего не делает,
// так что раунд можно использовать без подписчиков.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	d.sent[event.Type]++
	// Срез не меняется на месте, отписка во время рассылки безопасна
	listeners := d.listeners[event.Type]
	log.Trace().Str("event", string(event.Type)).Int("listeners", len(listeners)).Msg("dispatch")
	for _, l := range listeners {
		l.OnEvent(event)
	}
}

// Sent — сколько раз отправлялось событие данного типа.
func (d *Dispatcher) Sent(eventType EventType) int {
	return d.sent[eventType]
}

func (d *Dispatcher) indexOf(eventType EventType, listener Listener) int {
	for i, l := range d.listeners[eventType] {
		if l == listener {
			return i
		}
	}
	return -1
}
