package environment

import (
	"context"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/fixedpoint"
)

// TemperatureBehaviorFunc defines the function signature for simulated
// temperature behavior. It returns the temperature in °C or an error.
type TemperatureBehaviorFunc func(ctx context.Context) (fixedpoint.Q21x10, error)

// HumidityBehaviorFunc defines the function signature for simulated
// humidity behavior. It returns the relative humidity in % or an error.
type HumidityBehaviorFunc func(ctx context.Context) (virtualdev.RelativeHumidity, error)

// StaticTemperature returns a behavior producing a constant temperature.
func StaticTemperature(celsius float64) TemperatureBehaviorFunc {
	value := fixedpoint.Q21x10FromFloat(celsius)
	return func(ctx context.Context) (fixedpoint.Q21x10, error) {
		return value, nil
	}
}

// StaticHumidity returns a behavior producing a constant humidity.
func StaticHumidity(percent virtualdev.RelativeHumidity) HumidityBehaviorFunc {
	return func(ctx context.Context) (virtualdev.RelativeHumidity, error) {
		return percent, nil
	}
}

// SimTemperatureSensor is a virtual temperature device driven by a behavior
// function. It requires no hardware and can stand in for any
// temperature-producing device.
//
// Example usage:
//
//	sensor := NewSimTemperatureSensor(StaticTemperature(22.5))
//
//	// Dynamic behavior
//	temp := fixedpoint.Q21x10FromFloat(20.0)
//	sensor := NewSimTemperatureSensor(
//		func(ctx context.Context) (fixedpoint.Q21x10, error) { return temp, nil },
//	)
type SimTemperatureSensor struct {
	behavior TemperatureBehaviorFunc
}

func NewSimTemperatureSensor(behavior TemperatureBehaviorFunc) *SimTemperatureSensor {
	return &SimTemperatureSensor{behavior: behavior}
}

// GetTemperature returns the temperature by calling the behavior function.
func (s *SimTemperatureSensor) GetTemperature(ctx context.Context) (fixedpoint.Q21x10, error) {
	return s.behavior(ctx)
}

// SimHumiditySensor is a virtual relative humidity device driven by a
// behavior function.
type SimHumiditySensor struct {
	behavior HumidityBehaviorFunc
}

func NewSimHumiditySensor(behavior HumidityBehaviorFunc) *SimHumiditySensor {
	return &SimHumiditySensor{behavior: behavior}
}

// GetHumidity returns the humidity by calling the behavior function.
func (s *SimHumiditySensor) GetHumidity(ctx context.Context) (virtualdev.RelativeHumidity, error) {
	return s.behavior(ctx)
}

// SimClimateSensor is a virtual combined temperature/humidity device with
// independent behavior functions, similar to combined devices which expose
// both readings in one measurement cycle.
type SimClimateSensor struct {
	tempBehavior TemperatureBehaviorFunc
	humBehavior  HumidityBehaviorFunc
}

func NewSimClimateSensor(tempBehavior TemperatureBehaviorFunc, humBehavior HumidityBehaviorFunc) *SimClimateSensor {
	return &SimClimateSensor{tempBehavior: tempBehavior, humBehavior: humBehavior}
}

func (s *SimClimateSensor) GetTemperature(ctx context.Context) (fixedpoint.Q21x10, error) {
	return s.tempBehavior(ctx)
}

func (s *SimClimateSensor) GetHumidity(ctx context.Context) (virtualdev.RelativeHumidity, error) {
	return s.humBehavior(ctx)
}

// GetClimate returns both readings by calling both behavior functions. The
// temperature behavior is evaluated first; the first error wins.
func (s *SimClimateSensor) GetClimate(ctx context.Context) (Climate, error) {
	temp, err := s.tempBehavior(ctx)
	if err != nil {
		return Climate{}, err
	}
	hum, err := s.humBehavior(ctx)
	if err != nil {
		return Climate{}, err
	}
	return Climate{Temperature: temp, Humidity: hum}, nil
}

var _ virtualdev.TemperatureSensor = &SimTemperatureSensor{}
var _ virtualdev.HumiditySensor = &SimHumiditySensor{}
var _ ClimateSensor = &SimClimateSensor{}
