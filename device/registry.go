package device

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry is a named collection of drivers. It owns the name-to-driver
// mapping so drivers themselves stay nameless.
type Registry struct {
	mu      sync.Mutex
	drivers map[string]Driver
}

func NewRegistry() *Registry {
	return &Registry{drivers: make(map[string]Driver)}
}

// Register adds drv under name. Registering an existing name fails with
// ErrDuplicateDriver.
func (r *Registry) Register(name string, drv Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDriver, name)
	}
	r.drivers[name] = drv
	return nil
}

// Unregister removes the driver registered under name. Removing an unknown
// name is a silent no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drivers, name)
}

func (r *Registry) Get(name string) (Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drv, ok := r.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, name)
	}
	return drv, nil
}

// Names returns the registered driver names in lexical order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartAll starts every registered driver in name order, collecting
// failures. Drivers that fail to start do not prevent the others from
// starting.
func (r *Registry) StartAll() error {
	var errs []error
	for _, name := range r.Names() {
		drv, err := r.Get(name)
		if err != nil {
			continue
		}
		if err := drv.Start(); err != nil {
			errs = append(errs, fmt.Errorf("start %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// StopAll stops every registered driver in name order.
func (r *Registry) StopAll() error {
	var errs []error
	for _, name := range r.Names() {
		drv, err := r.Get(name)
		if err != nil {
			continue
		}
		if err := drv.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
