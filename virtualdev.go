package virtualdev

import (
	"context"
	"fmt"

	"github.com/mklimuk/virtualdev/fixedpoint"
)

// ErrInvalidSample is returned by a read when the device could not produce
// a valid measurement. Callers must not use the accompanying value.
var ErrInvalidSample = fmt.Errorf("invalid sample")

// ErrQueueFull is returned by asynchronous devices when a sample request
// cannot be enqueued.
var ErrQueueFull = fmt.Errorf("sample request queue is full")

var ErrNotStarted = fmt.Errorf("device is not started")

// RelativeHumidity is an integral relative humidity percentage in [0, 100].
type RelativeHumidity int8

type TemperatureSensor interface {
	// GetTemperature returns the current temperature in °C.
	GetTemperature(ctx context.Context) (fixedpoint.Q21x10, error)
}

type HumiditySensor interface {
	// GetHumidity returns the current relative humidity rounded to the
	// nearest whole percentage.
	GetHumidity(ctx context.Context) (RelativeHumidity, error)
}

type PressureSensor interface {
	// ReadPressure returns the current barometric pressure in hPa.
	ReadPressure(ctx context.Context) (fixedpoint.UQ22x10, error)
}

type Altimeter interface {
	// ReadAltitude returns the current altitude in metres, corrected for
	// sea level pressure.
	ReadAltitude(ctx context.Context) (fixedpoint.Q21x10, error)
	// SetSeaLevelPressure sets the sea level pressure (hPa) used for
	// altitude correction.
	SetSeaLevelPressure(slp fixedpoint.UQ22x10)
}

type Barometer interface {
	PressureSensor
	Altimeter
}
