package engine

// Event is a Unity-style multi-cast event.
// Listeners are invoked synchronously, in subscription order, on the caller's
// goroutine. A listener that panics propagates out of Invoke.
type Event struct {
	listeners map[int]func()
	order     []int
	nextID    int
}

// AddListener registers a callback and returns an id usable with
// RemoveListener.
func (e *Event) AddListener(callback func()) int {
	if callback == nil {
		return -1
	}
	if e.listeners == nil {
		e.listeners = make(map[int]func())
	}
	id := e.nextID
	e.nextID++
	e.listeners[id] = callback
	e.order = append(e.order, id)
	return id
}

// RemoveListener removes the callback registered under id.
func (e *Event) RemoveListener(id int) {
	delete(e.listeners, id)
}

// RemoveAllListeners clears all listeners.
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
	e.order = nil
}

// Invoke calls all registered listeners.
func (e *Event) Invoke() {
	for _, id := range e.order {
		if listener, ok := e.listeners[id]; ok {
			listener()
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a multi-cast event carrying one argument.
type EventWithArg[T any] struct {
	listeners map[int]func(T)
	order     []int
	nextID    int
}

func (e *EventWithArg[T]) AddListener(callback func(T)) int {
	if callback == nil {
		return -1
	}
	if e.listeners == nil {
		e.listeners = make(map[int]func(T))
	}
	id := e.nextID
	e.nextID++
	e.listeners[id] = callback
	e.order = append(e.order, id)
	return id
}

func (e *EventWithArg[T]) RemoveListener(id int) {
	delete(e.listeners, id)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
	e.order = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, id := range e.order {
		if listener, ok := e.listeners[id]; ok {
			listener(arg)
		}
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}

// EventWith2Args is a multi-cast event carrying two arguments. Change
// notifications use it with (new, old) payloads.
type EventWith2Args[A, B any] struct {
	listeners map[int]func(A, B)
	order     []int
	nextID    int
}

func (e *EventWith2Args[A, B]) AddListener(callback func(A, B)) int {
	if callback == nil {
		return -1
	}
	if e.listeners == nil {
		e.listeners = make(map[int]func(A, B))
	}
	id := e.nextID
	e.nextID++
	e.listeners[id] = callback
	e.order = append(e.order, id)
	return id
}

func (e *EventWith2Args[A, B]) RemoveListener(id int) {
	delete(e.listeners, id)
}

func (e *EventWith2Args[A, B]) RemoveAllListeners() {
	e.listeners = nil
	e.order = nil
}

func (e *EventWith2Args[A, B]) Invoke(a A, b B) {
	for _, id := range e.order {
		if listener, ok := e.listeners[id]; ok {
			listener(a, b)
		}
	}
}

func (e *EventWith2Args[A, B]) ListenerCount() int {
	return len(e.listeners)
}
