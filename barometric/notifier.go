package barometric

import (
	"context"
	"fmt"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/fixedpoint"
	"github.com/mklimuk/virtualdev/notify"
)

// Sample is the payload delivered to barometric sample listeners: the full
// pressure/altitude tuple, regardless of which read triggered it.
type Sample struct {
	Pressure fixedpoint.UQ22x10
	Altitude fixedpoint.Q21x10
}

// Notifier wraps a Barometer with callback support. Both ReadPressure and
// ReadAltitude perform a full measurement: a valid one is dispatched to
// sample listeners as a Sample tuple, a failed one triggers the error
// listeners.
type Notifier struct {
	bar *Barometer
	hub *notify.Hub[Sample]
}

func NewNotifier(source virtualdev.PressureSensor, opts ...notify.Option) *Notifier {
	return &Notifier{
		bar: NewBarometer(source),
		hub: notify.NewHub[Sample](opts...),
	}
}

func (n *Notifier) ReadPressure(ctx context.Context) (fixedpoint.UQ22x10, error) {
	sample, err := n.measure(ctx)
	if err != nil {
		return 0, err
	}
	return sample.Pressure, nil
}

func (n *Notifier) ReadAltitude(ctx context.Context) (fixedpoint.Q21x10, error) {
	sample, err := n.measure(ctx)
	if err != nil {
		return 0, err
	}
	return sample.Altitude, nil
}

func (n *Notifier) measure(ctx context.Context) (Sample, error) {
	pressure, err := n.bar.ReadPressure(ctx)
	if err != nil {
		n.hub.DispatchError()
		return Sample{}, fmt.Errorf("barometric measurement failed: %w", err)
	}
	sample := Sample{
		Pressure: pressure,
		Altitude: altitude(pressure, n.bar.SeaLevelPressure()),
	}
	n.hub.DispatchSample(sample)
	return sample, nil
}

func (n *Notifier) SetSeaLevelPressure(slp fixedpoint.UQ22x10) {
	n.bar.SetSeaLevelPressure(slp)
}

func (n *Notifier) RegisterSampleCb(fn notify.Listener[Sample]) {
	n.hub.RegisterSample(fn)
}

func (n *Notifier) UnregisterSampleCb(fn notify.Listener[Sample]) {
	n.hub.UnregisterSample(fn)
}

func (n *Notifier) RegisterErrorCb(fn notify.ErrorFunc) {
	n.hub.RegisterError(fn)
}

func (n *Notifier) UnregisterErrorCb(fn notify.ErrorFunc) {
	n.hub.UnregisterError(fn)
}

// Close clears all listener registrations.
func (n *Notifier) Close() {
	n.hub.Clear()
}

var _ virtualdev.Barometer = &Notifier{}
