package device

import "fmt"

// Kind is the virtual device type used for generic driver management.
type Kind string

const (
	Temperature Kind = "temperature"
	Humidity    Kind = "humidity"
	Climate     Kind = "climate"
	Barometer   Kind = "barometer"
)

var ErrAlreadyStarted = fmt.Errorf("driver already started")
var ErrDuplicateDriver = fmt.Errorf("driver name already registered")
var ErrUnknownDriver = fmt.Errorf("unknown driver")

// Driver is the basic lifecycle every managed virtual device supports.
// Driver names live in the Registry, not in the driver itself, so a single
// driver implementation can be registered under several names.
type Driver interface {
	// Start powers the driver on. Starting a started driver returns
	// ErrAlreadyStarted.
	Start() error
	// Stop shuts the driver down. Stopping a stopped driver is a no-op.
	Stop() error
	// Restart stops (if needed) and starts the driver.
	Restart() error
	// Started reports whether the driver is running.
	Started() bool
	Kind() Kind
}
