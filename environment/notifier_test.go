package environment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/fixedpoint"
)

func TestTemperatureNotifier_DispatchOnValidRead(t *testing.T) {
	notifier := NewTemperatureNotifier(NewSimTemperatureSensor(StaticTemperature(22.5)))

	var samples []fixedpoint.Q21x10
	errCalls := 0
	notifier.RegisterSampleCb(func(temp fixedpoint.Q21x10) { samples = append(samples, temp) })
	notifier.RegisterErrorCb(func() { errCalls++ })

	temp, err := notifier.GetTemperature(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, fixedpoint.Q21x10FromFloat(22.5), temp)
	assert.Equal(t, []fixedpoint.Q21x10{temp}, samples)
	assert.Equal(t, 0, errCalls)
}

func TestTemperatureNotifier_DispatchOnFailedRead(t *testing.T) {
	notifier := NewTemperatureNotifier(NewSimTemperatureSensor(
		func(ctx context.Context) (fixedpoint.Q21x10, error) {
			return 0, virtualdev.ErrInvalidSample
		},
	))

	sampleCalls := 0
	errCalls := 0
	notifier.RegisterSampleCb(func(temp fixedpoint.Q21x10) { sampleCalls++ })
	notifier.RegisterErrorCb(func() { errCalls++ })

	_, err := notifier.GetTemperature(context.Background())
	assert.ErrorIs(t, err, virtualdev.ErrInvalidSample)
	assert.Equal(t, 0, sampleCalls)
	assert.Equal(t, 1, errCalls)
}

func TestTemperatureNotifier_UnregisteredListenerNotInvoked(t *testing.T) {
	notifier := NewTemperatureNotifier(NewSimTemperatureSensor(StaticTemperature(20.0)))

	calls := 0
	listener := func(temp fixedpoint.Q21x10) { calls++ }
	notifier.RegisterSampleCb(listener)
	notifier.UnregisterSampleCb(listener)

	_, err := notifier.GetTemperature(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, calls)
}

func TestHumidityNotifier_RoundTrip(t *testing.T) {
	notifier := NewHumidityNotifier(NewSimHumiditySensor(StaticHumidity(45)))

	var got virtualdev.RelativeHumidity
	notifier.RegisterSampleCb(func(hum virtualdev.RelativeHumidity) { got = hum })

	hum, err := notifier.GetHumidity(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, virtualdev.RelativeHumidity(45), hum)
	assert.Equal(t, hum, got)
}

func TestClimateNotifier_TuplePayload(t *testing.T) {
	notifier := NewClimateNotifier(NewSimClimateSensor(StaticTemperature(21.0), StaticHumidity(55)))

	var got Climate
	notifier.RegisterSampleCb(func(c Climate) { got = c })

	climate, err := notifier.GetClimate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, climate, got)
	assert.Equal(t, fixedpoint.Q21x10FromFloat(21.0), got.Temperature)
	assert.Equal(t, virtualdev.RelativeHumidity(55), got.Humidity)
}

func TestClimateNotifier_ErrorPath(t *testing.T) {
	failure := errors.New("sensor fault")
	notifier := NewClimateNotifier(NewSimClimateSensor(
		func(ctx context.Context) (fixedpoint.Q21x10, error) { return 0, failure },
		StaticHumidity(50),
	))

	errCalls := 0
	notifier.RegisterErrorCb(func() { errCalls++ })

	_, err := notifier.GetClimate(context.Background())
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 1, errCalls)
}

func TestNotifier_CloseClearsListeners(t *testing.T) {
	notifier := NewTemperatureNotifier(NewSimTemperatureSensor(StaticTemperature(20.0)))

	calls := 0
	notifier.RegisterSampleCb(func(temp fixedpoint.Q21x10) { calls++ })
	notifier.Close()

	_, err := notifier.GetTemperature(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, calls)
}
