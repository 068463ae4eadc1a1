package notify

import (
	"fmt"
	"reflect"
	"sync"
)

// Listener is a callable invoked with every new valid sample. Listeners are
// not guaranteed to run on any particular goroutine; keep them small and
// hand heavy work off to a queue.
type Listener[T any] func(sample T)

// ErrorFunc is a callable invoked when a producer fails to obtain a valid
// sample. The same execution guidance as for Listener applies.
type ErrorFunc func()

// OverflowPolicy decides what happens when a listener is registered on a
// set that reached its capacity.
type OverflowPolicy int

const (
	// OverflowPanic panics on registration over capacity. This is the
	// default, matching the assert-on-overflow stance of fixed-size
	// embedded callback lists.
	OverflowPanic OverflowPolicy = iota
	// OverflowReject silently drops registrations over capacity.
	OverflowReject
	// OverflowGrow lifts the capacity bound and grows the set on demand.
	OverflowGrow
)

const DefaultCapacity = 8

type Options struct {
	Capacity int
	Policy   OverflowPolicy
}

type Option func(*Options)

func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Capacity: DefaultCapacity, Policy: OverflowPanic}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Capacity <= 0 {
		o.Capacity = DefaultCapacity
	}
	return o
}

// listenerSet is the shared core behind Registry and ErrorRegistry: an
// ordered, bounded set of callables keyed by their code pointer.
type listenerSet[F any] struct {
	mu       sync.Mutex
	capacity int
	policy   OverflowPolicy
	keys     []uintptr
	fns      []F
}

// funcKey derives the identity of a callable. Like a C callback list, the
// identity is the function's code pointer: registering the same function
// twice is a no-op, while two distinct function literals are two distinct
// listeners. Closures created from the same literal share an identity.
func funcKey(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.IsNil() {
		panic("notify: nil listener")
	}
	return v.Pointer()
}

// guard runs fn, converting a listener panic into a returned value so a
// dispatch pass can continue with the remaining listeners.
func guard(fn func()) (p any) {
	defer func() { p = recover() }()
	fn()
	return nil
}

func (s *listenerSet[F]) add(fn F, key uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.keys {
		if k == key {
			return
		}
	}
	if s.policy != OverflowGrow && len(s.keys) >= s.capacity {
		if s.policy == OverflowPanic {
			panic(fmt.Sprintf("notify: listener set capacity %d exceeded", s.capacity))
		}
		return
	}
	s.keys = append(s.keys, key)
	s.fns = append(s.fns, fn)
}

func (s *listenerSet[F]) remove(key uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			s.fns = append(s.fns[:i], s.fns[i+1:]...)
			return
		}
	}
}

// snapshot returns a stable copy of the current listeners in registration
// order. Dispatch iterates the copy so that concurrent registration changes
// never affect an in-progress pass.
func (s *listenerSet[F]) snapshot() []F {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]F, len(s.fns))
	copy(out, s.fns)
	return out
}

func (s *listenerSet[F]) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

func (s *listenerSet[F]) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = nil
	s.fns = nil
}

// Registry is a bounded ordered set of sample listeners. The zero value is
// not usable; create instances with NewRegistry.
type Registry[T any] struct {
	set listenerSet[Listener[T]]
}

func NewRegistry[T any](opts ...Option) *Registry[T] {
	o := buildOptions(opts)
	return &Registry[T]{set: listenerSet[Listener[T]]{capacity: o.Capacity, policy: o.Policy}}
}

// Register adds fn to the set. Registering a listener that is already
// present is a no-op. Identity is the function's code pointer, so two
// closures created from the same function literal count as a single
// listener. A nil listener is a caller contract violation and panics.
func (r *Registry[T]) Register(fn Listener[T]) {
	r.set.add(fn, funcKey(fn))
}

// Unregister removes fn from the set. Removing a listener that is not
// present (including nil) is a silent no-op. Closures sharing a code
// pointer share a registration, so unregistering one removes the other.
func (r *Registry[T]) Unregister(fn Listener[T]) {
	if fn == nil {
		return
	}
	r.set.remove(funcKey(fn))
}

// Dispatch invokes every currently registered listener with sample, in
// registration order. Listeners may register or unregister listeners
// (including themselves) during the call; the in-progress pass keeps using
// the snapshot taken at dispatch start. A panicking listener does not stop
// the pass: the remaining listeners still run, and the first recovered
// panic value is re-raised once the pass completes.
func (r *Registry[T]) Dispatch(sample T) {
	var failure any
	for _, fn := range r.set.snapshot() {
		if p := guard(func() { fn(sample) }); p != nil && failure == nil {
			failure = p
		}
	}
	if failure != nil {
		panic(failure)
	}
}

func (r *Registry[T]) Len() int {
	return r.set.size()
}

func (r *Registry[T]) Clear() {
	r.set.clear()
}

// ErrorRegistry is a bounded ordered set of error listeners. It follows
// the same registration and dispatch contract as Registry.
type ErrorRegistry struct {
	set listenerSet[ErrorFunc]
}

func NewErrorRegistry(opts ...Option) *ErrorRegistry {
	o := buildOptions(opts)
	return &ErrorRegistry{set: listenerSet[ErrorFunc]{capacity: o.Capacity, policy: o.Policy}}
}

func (r *ErrorRegistry) Register(fn ErrorFunc) {
	r.set.add(fn, funcKey(fn))
}

func (r *ErrorRegistry) Unregister(fn ErrorFunc) {
	if fn == nil {
		return
	}
	r.set.remove(funcKey(fn))
}

func (r *ErrorRegistry) Dispatch() {
	var failure any
	for _, fn := range r.set.snapshot() {
		if p := guard(func() { fn() }); p != nil && failure == nil {
			failure = p
		}
	}
	if failure != nil {
		panic(failure)
	}
}

func (r *ErrorRegistry) Len() int {
	return r.set.size()
}

func (r *ErrorRegistry) Clear() {
	r.set.clear()
}
