package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/device"
	"github.com/mklimuk/virtualdev/environment"
	"github.com/mklimuk/virtualdev/fixedpoint"
)

func TestDriver_PublishesSamples(t *testing.T) {
	notifier := environment.NewTemperatureNotifier(
		environment.NewSimTemperatureSensor(environment.StaticTemperature(22.5)),
	)
	poller := device.NewPoller(func(ctx context.Context) error {
		_, err := notifier.GetTemperature(ctx)
		return err
	}, device.WithInterval(5*time.Millisecond), device.WithKind(device.Temperature))

	drv := NewDriver("temp0", poller, BindTemperature(notifier))
	assert.Equal(t, "temp0", drv.Name())

	samples := make(chan interface{}, 16)
	assert.NoError(t, drv.On(NewSample, func(data interface{}) {
		select {
		case samples <- data:
		default:
		}
	}))

	assert.NoError(t, drv.Start())
	defer func() { _ = drv.Halt() }()

	select {
	case data := <-samples:
		assert.Equal(t, fixedpoint.Q21x10FromFloat(22.5), data)
	case <-time.After(time.Second):
		t.Fatal("no sample event published")
	}
}

func TestDriver_PublishesErrors(t *testing.T) {
	notifier := environment.NewTemperatureNotifier(
		environment.NewSimTemperatureSensor(
			func(ctx context.Context) (fixedpoint.Q21x10, error) {
				return 0, virtualdev.ErrInvalidSample
			},
		),
	)
	poller := device.NewPoller(func(ctx context.Context) error {
		_, err := notifier.GetTemperature(ctx)
		return err
	}, device.WithInterval(5*time.Millisecond))

	drv := NewDriver("temp0", poller, BindTemperature(notifier))

	errs := make(chan struct{}, 16)
	assert.NoError(t, drv.On(Error, func(data interface{}) {
		select {
		case errs <- struct{}{}:
		default:
		}
	}))

	assert.NoError(t, drv.Start())
	defer func() { _ = drv.Halt() }()

	select {
	case <-errs:
	case <-time.After(time.Second):
		t.Fatal("no error event published")
	}
}

func TestDriver_HaltDetachesListeners(t *testing.T) {
	notifier := environment.NewTemperatureNotifier(
		environment.NewSimTemperatureSensor(environment.StaticTemperature(20.0)),
	)
	poller := device.NewPoller(func(ctx context.Context) error {
		_, err := notifier.GetTemperature(ctx)
		return err
	}, device.WithInterval(5*time.Millisecond))

	drv := NewDriver("temp0", poller, BindTemperature(notifier))
	assert.NoError(t, drv.Start())
	assert.NoError(t, drv.Halt())

	// a direct read after Halt must not publish through the driver
	published := make(chan struct{}, 1)
	assert.NoError(t, drv.On(NewSample, func(data interface{}) {
		select {
		case published <- struct{}{}:
		default:
		}
	}))
	_, err := notifier.GetTemperature(context.Background())
	assert.NoError(t, err)

	select {
	case <-published:
		t.Fatal("halted driver still publishes samples")
	case <-time.After(50 * time.Millisecond):
	}
}
