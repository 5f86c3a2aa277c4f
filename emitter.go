package zrender

// Event is a named notification raised on a node.
type Event struct {
	Type   string
	Target *Node
	Data   any
}

// EventHandler receives events raised on a node.
type EventHandler func(Event)

type handlerEntry struct {
	id uint32
	fn EventHandler
}

// emitter is the event capability composed into Node. Handlers are keyed by
// event name and fire in registration order.
type emitter struct {
	handlers map[string][]handlerEntry
	nextID   uint32
}

// EventHandle allows removing a registered node callback.
type EventHandle struct {
	id    uint32
	em    *emitter
	event string
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h EventHandle) Remove() {
	if h.em == nil || h.em.handlers == nil {
		return
	}
	entries := h.em.handlers[h.event]
	for i, e := range entries {
		if e.id == h.id {
			h.em.handlers[h.event] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

func (em *emitter) on(event string, fn EventHandler) EventHandle {
	if em.handlers == nil {
		em.handlers = make(map[string][]handlerEntry)
	}
	em.nextID++
	id := em.nextID
	em.handlers[event] = append(em.handlers[event], handlerEntry{id: id, fn: fn})
	return EventHandle{id: id, em: em, event: event}
}

func (em *emitter) off(event string) {
	if em.handlers != nil {
		delete(em.handlers, event)
	}
}

func (em *emitter) trigger(ev Event) {
	entries := em.handlers[ev.Type]
	if len(entries) == 0 {
		return
	}
	// Snapshot so handlers can remove themselves mid-dispatch.
	snapshot := make([]handlerEntry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		e.fn(ev)
	}
}

// On registers a handler for the named event and returns a removal handle.
func (n *Node) On(event string, fn EventHandler) EventHandle {
	return n.em.on(event, fn)
}

// Off removes every handler registered for the named event.
func (n *Node) Off(event string) {
	n.em.off(event)
}

// Trigger fires the named event on this node with optional payload data.
func (n *Node) Trigger(event string, data any) {
	n.em.trigger(Event{Type: event, Target: n, Data: data})
}
