package adapter

import (
	"gobot.io/x/gobot/v2"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/barometric"
	"github.com/mklimuk/virtualdev/device"
	"github.com/mklimuk/virtualdev/environment"
	"github.com/mklimuk/virtualdev/fixedpoint"
	"github.com/mklimuk/virtualdev/notify"
)

// Gobot event names published by Driver.
const (
	NewSample = "newSample"
	Error     = "error"
)

// Binder attaches listeners forwarding a producer's samples and errors to
// publish. It returns the matching detach function.
type Binder func(publish func(name string, data interface{})) (unbind func())

// Driver exposes a virtual device as a gobot driver. Samples and errors
// flow out as gobot events; the underlying device lifecycle follows
// Start/Halt. Virtual devices need no adaptor, Connection is always nil.
type Driver struct {
	gobot.Eventer
	name   string
	dev    device.Driver
	bind   Binder
	unbind func()
}

func NewDriver(name string, dev device.Driver, bind Binder) *Driver {
	d := &Driver{
		Eventer: gobot.NewEventer(),
		name:    name,
		dev:     dev,
		bind:    bind,
	}
	d.AddEvent(NewSample)
	d.AddEvent(Error)
	return d
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) SetName(name string) {
	d.name = name
}

func (d *Driver) Connection() gobot.Connection {
	return nil
}

func (d *Driver) Start() error {
	d.unbind = d.bind(d.Publish)
	if err := d.dev.Start(); err != nil {
		d.unbind()
		d.unbind = nil
		return err
	}
	return nil
}

func (d *Driver) Halt() error {
	err := d.dev.Stop()
	if d.unbind != nil {
		d.unbind()
		d.unbind = nil
	}
	return err
}

// BindTemperature forwards a temperature notifier's callbacks to gobot
// events. The NewSample payload is the fixedpoint.Q21x10 temperature.
func BindTemperature(n *environment.TemperatureNotifier) Binder {
	return func(publish func(string, interface{})) func() {
		onSample := notify.Listener[fixedpoint.Q21x10](func(temp fixedpoint.Q21x10) {
			publish(NewSample, temp)
		})
		onError := notify.ErrorFunc(func() { publish(Error, nil) })
		n.RegisterSampleCb(onSample)
		n.RegisterErrorCb(onError)
		return func() {
			n.UnregisterSampleCb(onSample)
			n.UnregisterErrorCb(onError)
		}
	}
}

// BindHumidity forwards a humidity notifier's callbacks to gobot events.
func BindHumidity(n *environment.HumidityNotifier) Binder {
	return func(publish func(string, interface{})) func() {
		onSample := notify.Listener[virtualdev.RelativeHumidity](func(hum virtualdev.RelativeHumidity) {
			publish(NewSample, hum)
		})
		onError := notify.ErrorFunc(func() { publish(Error, nil) })
		n.RegisterSampleCb(onSample)
		n.RegisterErrorCb(onError)
		return func() {
			n.UnregisterSampleCb(onSample)
			n.UnregisterErrorCb(onError)
		}
	}
}

// BindClimate forwards a climate notifier's callbacks to gobot events.
// The NewSample payload is the environment.Climate tuple.
func BindClimate(n *environment.ClimateNotifier) Binder {
	return func(publish func(string, interface{})) func() {
		onSample := notify.Listener[environment.Climate](func(c environment.Climate) {
			publish(NewSample, c)
		})
		onError := notify.ErrorFunc(func() { publish(Error, nil) })
		n.RegisterSampleCb(onSample)
		n.RegisterErrorCb(onError)
		return func() {
			n.UnregisterSampleCb(onSample)
			n.UnregisterErrorCb(onError)
		}
	}
}

// BindBarometer forwards a barometric notifier's callbacks to gobot
// events. The NewSample payload is the barometric.Sample tuple.
func BindBarometer(n *barometric.Notifier) Binder {
	return func(publish func(string, interface{})) func() {
		onSample := notify.Listener[barometric.Sample](func(s barometric.Sample) {
			publish(NewSample, s)
		})
		onError := notify.ErrorFunc(func() { publish(Error, nil) })
		n.RegisterSampleCb(onSample)
		n.RegisterErrorCb(onError)
		return func() {
			n.UnregisterSampleCb(onSample)
			n.UnregisterErrorCb(onError)
		}
	}
}

var _ gobot.Driver = &Driver{}
