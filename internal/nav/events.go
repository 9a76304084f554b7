package nav

// Events is an in-process FragmentSource. Emit delivers a fragment to every
// registered listener synchronously, in registration order.
type Events struct {
	listeners map[int]func(string)
	nextID    int
}

// NewEvents returns an Events with no listeners.
func NewEvents() *Events {
	return &Events{listeners: make(map[int]func(string))}
}

func (e *Events) OnFragmentChange(fn func(string)) func() {
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	return func() {
		delete(e.listeners, id)
	}
}

// Emit notifies listeners that the fragment changed.
func (e *Events) Emit(fragment string) {
	for id := 0; id < e.nextID; id++ {
		if fn, ok := e.listeners[id]; ok {
			fn(fragment)
		}
	}
}

// Listeners reports how many listeners are registered.
func (e *Events) Listeners() int {
	return len(e.listeners)
}
