package notify

// Hub pairs the two listener sets a sensor-like producer needs: sample
// listeners invoked on every valid reading and error listeners invoked on
// failed ones. A producer owns one Hub for its whole lifetime.
type Hub[T any] struct {
	samples *Registry[T]
	errors  *ErrorRegistry
}

func NewHub[T any](opts ...Option) *Hub[T] {
	return &Hub[T]{
		samples: NewRegistry[T](opts...),
		errors:  NewErrorRegistry(opts...),
	}
}

func (h *Hub[T]) RegisterSample(fn Listener[T]) {
	h.samples.Register(fn)
}

func (h *Hub[T]) UnregisterSample(fn Listener[T]) {
	h.samples.Unregister(fn)
}

func (h *Hub[T]) RegisterError(fn ErrorFunc) {
	h.errors.Register(fn)
}

func (h *Hub[T]) UnregisterError(fn ErrorFunc) {
	h.errors.Unregister(fn)
}

// DispatchSample fans sample out to the sample listeners. Error listeners
// are not involved.
func (h *Hub[T]) DispatchSample(sample T) {
	h.samples.Dispatch(sample)
}

// DispatchError fans out to the error listeners. Sample listeners are not
// involved.
func (h *Hub[T]) DispatchError() {
	h.errors.Dispatch()
}

func (h *Hub[T]) SampleListeners() int {
	return h.samples.Len()
}

func (h *Hub[T]) ErrorListeners() int {
	return h.errors.Len()
}

// Clear removes all listeners from both sets. Producers call it on
// teardown.
func (h *Hub[T]) Clear() {
	h.samples.Clear()
	h.errors.Clear()
}
