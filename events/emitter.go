package events

import (
	"reflect"
	"strings"
	"sync"
)

// Event is what handlers receive: the type name the emission was dispatched
// under, plus the emitter-supplied payload.
type Event struct {
	Type string
	Data any
}

// Handler handles one emitted Event.
type Handler func(Event)

// Emitter dispatches events by type name. The zero value is ready to use.
// Unlike the single-threaded hosts this API descends from, an Emitter is
// safe for concurrent registration and emission.
type Emitter struct {
	mu       sync.RWMutex
	handlers map[string][]registration
}

// registration pairs a handler with its identity key so Off can find it
// again (Go funcs are not comparable).
type registration struct {
	key uintptr
	fn  Handler
}

// On registers h for every whitespace-separated event type in types.
// Every call adds a registration: Go funcs have no usable same-reference
// identity, so On never suppresses an apparent duplicate — two closures
// built from the same literal are distinct handlers and both fire.
// A nil handler is ignored.
func (e *Emitter) On(types string, h Handler) {
	if h == nil {
		return
	}
	key := handlerKey(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[string][]registration)
	}
	for _, t := range strings.Fields(types) {
		e.handlers[t] = append(e.handlers[t], registration{key: key, fn: h})
	}
}

// Off removes one registration of h from every whitespace-separated event
// type in types. Types h was never registered for are skipped silently.
//
// Matching is best-effort, by the function's code pointer: closures built
// from the same literal are indistinguishable to Off, which removes the
// earliest registration with that code pointer. Callers juggling several
// closures from one literal should register distinct top-level functions
// (or wrapper funcs) when they need exact removal.
func (e *Emitter) Off(types string, h Handler) {
	if h == nil {
		return
	}
	key := handlerKey(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, t := range strings.Fields(types) {
		regs := e.handlers[t]
		i := indexOfKey(regs, key)
		if i < 0 {
			continue
		}
		e.handlers[t] = append(regs[:i:i], regs[i+1:]...)
	}
}

// Emit dispatches an Event of the given type to its handlers, in
// registration order. Handlers registered or removed during dispatch take
// effect on the next emission.
func (e *Emitter) Emit(typ string, data any) {
	e.mu.RLock()
	regs := e.handlers[typ]
	snapshot := make([]Handler, len(regs))
	for i, r := range regs {
		snapshot[i] = r.fn
	}
	e.mu.RUnlock()

	ev := Event{Type: typ, Data: data}
	for _, fn := range snapshot {
		fn(ev)
	}
}

// HandlerCount returns the number of handlers registered for typ.
func (e *Emitter) HandlerCount(typ string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[typ])
}

func handlerKey(h Handler) uintptr {
	return reflect.ValueOf(h).Pointer()
}

func indexOfKey(regs []registration, key uintptr) int {
	for i, r := range regs {
		if r.key == key {
			return i
		}
	}
	return -1
}
