package environment

import (
	"context"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/fixedpoint"
)

// Climate is a combined temperature and humidity reading, dispatched as one
// payload to climate sample listeners.
type Climate struct {
	Temperature fixedpoint.Q21x10
	Humidity    virtualdev.RelativeHumidity
}

type ClimateSensor interface {
	// GetClimate returns the current temperature and humidity.
	GetClimate(ctx context.Context) (Climate, error)
}
