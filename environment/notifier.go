package environment

import (
	"context"
	"fmt"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/fixedpoint"
	"github.com/mklimuk/virtualdev/notify"
)

// TemperatureNotifier wraps a temperature sensor with callback support.
// Every successful read is fanned out to registered sample listeners;
// every failed read triggers the error listeners. The notifier owns its
// listener sets for the lifetime of the wrapped device.
type TemperatureNotifier struct {
	source virtualdev.TemperatureSensor
	hub    *notify.Hub[fixedpoint.Q21x10]
}

func NewTemperatureNotifier(source virtualdev.TemperatureSensor, opts ...notify.Option) *TemperatureNotifier {
	return &TemperatureNotifier{
		source: source,
		hub:    notify.NewHub[fixedpoint.Q21x10](opts...),
	}
}

// GetTemperature reads from the underlying sensor. On a valid sample the
// value is returned to the caller and dispatched to sample listeners; on
// failure error listeners are notified and the error is returned.
func (n *TemperatureNotifier) GetTemperature(ctx context.Context) (fixedpoint.Q21x10, error) {
	temp, err := n.source.GetTemperature(ctx)
	if err != nil {
		n.hub.DispatchError()
		return 0, fmt.Errorf("temperature read failed: %w", err)
	}
	n.hub.DispatchSample(temp)
	return temp, nil
}

func (n *TemperatureNotifier) RegisterSampleCb(fn notify.Listener[fixedpoint.Q21x10]) {
	n.hub.RegisterSample(fn)
}

func (n *TemperatureNotifier) UnregisterSampleCb(fn notify.Listener[fixedpoint.Q21x10]) {
	n.hub.UnregisterSample(fn)
}

func (n *TemperatureNotifier) RegisterErrorCb(fn notify.ErrorFunc) {
	n.hub.RegisterError(fn)
}

func (n *TemperatureNotifier) UnregisterErrorCb(fn notify.ErrorFunc) {
	n.hub.UnregisterError(fn)
}

// Close clears all listener registrations.
func (n *TemperatureNotifier) Close() {
	n.hub.Clear()
}

// HumidityNotifier wraps a humidity sensor with callback support. Contract
// is the same as for TemperatureNotifier.
type HumidityNotifier struct {
	source virtualdev.HumiditySensor
	hub    *notify.Hub[virtualdev.RelativeHumidity]
}

func NewHumidityNotifier(source virtualdev.HumiditySensor, opts ...notify.Option) *HumidityNotifier {
	return &HumidityNotifier{
		source: source,
		hub:    notify.NewHub[virtualdev.RelativeHumidity](opts...),
	}
}

func (n *HumidityNotifier) GetHumidity(ctx context.Context) (virtualdev.RelativeHumidity, error) {
	hum, err := n.source.GetHumidity(ctx)
	if err != nil {
		n.hub.DispatchError()
		return 0, fmt.Errorf("humidity read failed: %w", err)
	}
	n.hub.DispatchSample(hum)
	return hum, nil
}

func (n *HumidityNotifier) RegisterSampleCb(fn notify.Listener[virtualdev.RelativeHumidity]) {
	n.hub.RegisterSample(fn)
}

func (n *HumidityNotifier) UnregisterSampleCb(fn notify.Listener[virtualdev.RelativeHumidity]) {
	n.hub.UnregisterSample(fn)
}

func (n *HumidityNotifier) RegisterErrorCb(fn notify.ErrorFunc) {
	n.hub.RegisterError(fn)
}

func (n *HumidityNotifier) UnregisterErrorCb(fn notify.ErrorFunc) {
	n.hub.UnregisterError(fn)
}

func (n *HumidityNotifier) Close() {
	n.hub.Clear()
}

// ClimateNotifier wraps a combined climate sensor with callback support.
// The full Climate tuple is dispatched as one payload.
type ClimateNotifier struct {
	source ClimateSensor
	hub    *notify.Hub[Climate]
}

func NewClimateNotifier(source ClimateSensor, opts ...notify.Option) *ClimateNotifier {
	return &ClimateNotifier{
		source: source,
		hub:    notify.NewHub[Climate](opts...),
	}
}

func (n *ClimateNotifier) GetClimate(ctx context.Context) (Climate, error) {
	climate, err := n.source.GetClimate(ctx)
	if err != nil {
		n.hub.DispatchError()
		return Climate{}, fmt.Errorf("climate read failed: %w", err)
	}
	n.hub.DispatchSample(climate)
	return climate, nil
}

func (n *ClimateNotifier) RegisterSampleCb(fn notify.Listener[Climate]) {
	n.hub.RegisterSample(fn)
}

func (n *ClimateNotifier) UnregisterSampleCb(fn notify.Listener[Climate]) {
	n.hub.UnregisterSample(fn)
}

func (n *ClimateNotifier) RegisterErrorCb(fn notify.ErrorFunc) {
	n.hub.RegisterError(fn)
}

func (n *ClimateNotifier) UnregisterErrorCb(fn notify.ErrorFunc) {
	n.hub.UnregisterError(fn)
}

func (n *ClimateNotifier) Close() {
	n.hub.Clear()
}

var _ virtualdev.TemperatureSensor = &TemperatureNotifier{}
var _ virtualdev.HumiditySensor = &HumidityNotifier{}
var _ ClimateSensor = &ClimateNotifier{}
