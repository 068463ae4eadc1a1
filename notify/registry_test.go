package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndDispatch(t *testing.T) {
	reg := NewRegistry[int]()

	var got []int
	reg.Register(func(v int) { got = append(got, v) })

	reg.Dispatch(42)
	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("expected a single invocation with 42, got %v", got)
	}
}

func TestRegistry_IdempotentRegistration(t *testing.T) {
	reg := NewRegistry[int]()

	calls := 0
	listener := func(v int) { calls++ }

	reg.Register(listener)
	reg.Register(listener)
	if reg.Len() != 1 {
		t.Fatalf("expected 1 registered listener, got %d", reg.Len())
	}

	reg.Dispatch(1)
	if calls != 1 {
		t.Errorf("expected exactly one invocation, got %d", calls)
	}
}

func TestRegistry_UnregisterAbsent(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Register(func(v int) {})

	// absent and nil removals are silent no-ops
	reg.Unregister(func(v int) { _ = v })
	reg.Unregister(nil)
	if reg.Len() != 1 {
		t.Errorf("expected set unchanged, got %d listeners", reg.Len())
	}
}

func TestRegistry_UnregisterStopsInvocation(t *testing.T) {
	reg := NewRegistry[int]()

	calls := 0
	listener := func(v int) { calls++ }

	reg.Register(listener)
	reg.Unregister(listener)
	reg.Dispatch(7)
	if calls != 0 {
		t.Errorf("unregistered listener was invoked %d times", calls)
	}
}

func TestRegistry_DispatchOrder(t *testing.T) {
	reg := NewRegistry[int]()

	var order []string
	reg.Register(func(v int) { order = append(order, "first") })
	reg.Register(func(v int) { order = append(order, "second") })
	reg.Register(func(v int) { order = append(order, "third") })

	reg.Dispatch(0)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestRegistry_SelfUnregisterDuringDispatch(t *testing.T) {
	reg := NewRegistry[int]()

	var order []string
	first := func(v int) { order = append(order, "first") }

	var second Listener[int]
	second = func(v int) {
		order = append(order, "second")
		reg.Unregister(second)
	}
	third := func(v int) { order = append(order, "third") }

	reg.Register(first)
	reg.Register(second)
	reg.Register(third)

	reg.Dispatch(0)
	// the snapshot taken at dispatch start still includes all three
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, 2, reg.Len())

	order = nil
	reg.Dispatch(0)
	assert.Equal(t, []string{"first", "third"}, order)
}

func TestRegistry_RegisterDuringDispatch(t *testing.T) {
	reg := NewRegistry[int]()

	late := 0
	reg.Register(func(v int) {
		reg.Register(func(v int) { late++ })
	})

	reg.Dispatch(0)
	if late != 0 {
		t.Errorf("listener registered mid-dispatch was invoked in the same pass")
	}

	reg.Dispatch(0)
	if late != 1 {
		t.Errorf("expected late listener to run on the next pass, got %d calls", late)
	}
}

func TestRegistry_NilListenerPanics(t *testing.T) {
	reg := NewRegistry[int]()
	assert.Panics(t, func() { reg.Register(nil) })
}

func TestRegistry_OverflowPanic(t *testing.T) {
	reg := NewRegistry[int](WithCapacity(2))
	reg.Register(func(v int) { _ = v + 1 })
	reg.Register(func(v int) { _ = v + 2 })
	assert.Panics(t, func() {
		reg.Register(func(v int) { _ = v + 3 })
	})
}

func TestRegistry_OverflowReject(t *testing.T) {
	reg := NewRegistry[int](WithCapacity(2), WithOverflowPolicy(OverflowReject))

	var order []int
	reg.Register(func(v int) { order = append(order, 1) })
	reg.Register(func(v int) { order = append(order, 2) })
	reg.Register(func(v int) { order = append(order, 3) })

	assert.Equal(t, 2, reg.Len())
	reg.Dispatch(0)
	assert.Equal(t, []int{1, 2}, order)
}

func TestRegistry_OverflowGrow(t *testing.T) {
	reg := NewRegistry[int](WithCapacity(1), WithOverflowPolicy(OverflowGrow))
	reg.Register(func(v int) { _ = v + 1 })
	reg.Register(func(v int) { _ = v + 2 })
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_Clear(t *testing.T) {
	reg := NewRegistry[int]()
	calls := 0
	reg.Register(func(v int) { calls++ })
	reg.Clear()
	reg.Dispatch(0)
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, 0, calls)
}

func TestRegistry_ConcurrentMutation(t *testing.T) {
	reg := NewRegistry[int](WithCapacity(4), WithOverflowPolicy(OverflowReject))

	permanent := func(v int) { _ = v }
	reg.Register(permanent)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			churn := func(v int) {}
			for i := 0; i < 500; i++ {
				reg.Register(churn)
				reg.Dispatch(i)
				reg.Unregister(churn)
			}
		}()
	}
	wg.Wait()

	if reg.Len() < 1 {
		t.Errorf("permanent listener lost during concurrent churn")
	}
}

func TestErrorRegistry_Basics(t *testing.T) {
	reg := NewErrorRegistry()

	calls := 0
	listener := func() { calls++ }

	reg.Register(listener)
	reg.Register(listener)
	assert.Equal(t, 1, reg.Len())

	reg.Dispatch()
	assert.Equal(t, 1, calls)

	reg.Unregister(listener)
	reg.Dispatch()
	assert.Equal(t, 1, calls)
	reg.Unregister(nil)
}

func TestRegistry_DispatchContinuesAfterListenerPanic(t *testing.T) {
	reg := NewRegistry[int]()

	var got []string
	reg.Register(func(v int) { got = append(got, "first") })
	reg.Register(func(v int) { panic("listener failure") })
	reg.Register(func(v int) { got = append(got, "third") })

	assert.PanicsWithValue(t, "listener failure", func() { reg.Dispatch(0) })
	assert.Equal(t, []string{"first", "third"}, got)
}

func TestRegistry_FirstListenerPanicWins(t *testing.T) {
	reg := NewRegistry[int]()

	invoked := 0
	reg.Register(func(v int) { panic("first failure") })
	reg.Register(func(v int) { panic("second failure") })
	reg.Register(func(v int) { invoked++ })

	assert.PanicsWithValue(t, "first failure", func() { reg.Dispatch(0) })
	assert.Equal(t, 1, invoked)
}

func TestErrorRegistry_DispatchContinuesAfterListenerPanic(t *testing.T) {
	reg := NewErrorRegistry()

	calls := 0
	reg.Register(func() { calls++ })
	reg.Register(func() { panic("listener failure") })
	reg.Register(func() { calls += 10 })

	assert.PanicsWithValue(t, "listener failure", func() { reg.Dispatch() })
	assert.Equal(t, 11, calls)
}
