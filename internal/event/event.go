// internal/event/event.go
package event

// EventType names an event.
type EventType string

// Event is what listeners receive. Data holds one of the payload structs
// from types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription identifies one registration. Listeners are not compared, so
// a ListenerFunc can be unsubscribed like any other listener.
type Subscription uint64

type subscriber struct {
	id       Subscription
	listener Listener
}

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	all       []subscriber
	nextID    Subscription
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return d.nextID
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) Subscription {
	d.nextID++
	d.all = append(d.all, subscriber{id: d.nextID, listener: listener})
	return d.nextID
}

// Unsubscribe removes a registration made by Subscribe or SubscribeAll.
// Unknown ids are ignored.
func (d *Dispatcher) Unsubscribe(id Subscription) {
	for eventType, subs := range d.listeners {
		if i := indexOf(subs, id); i >= 0 {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
	if i := indexOf(d.all, id); i >= 0 {
		d.all = append(d.all[:i:i], d.all[i+1:]...)
	}
}

func indexOf(subs []subscriber, id Subscription) int {
	for i, s := range subs {
		if s.id == id {
			return i
		}
	}
	return -1
}

// Dispatch sends event to its subscribers, then to the catch-all ones.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
	for _, s := range d.all {
		s.listener.OnEvent(event)
	}
}

// Emit is shorthand for Dispatch(Event{Type: t, Data: data}). Safe on a nil
// dispatcher.
func (d *Dispatcher) Emit(t EventType, data interface{}) {
	if d == nil {
		return
	}
	d.Dispatch(Event{Type: t, Data: data})
}
