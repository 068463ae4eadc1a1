package virtualdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/physic"

	"github.com/mklimuk/virtualdev/fixedpoint"
)

func TestUnits_Temperature(t *testing.T) {
	got := Temperature(fixedpoint.Q21x10FromFloat(0))
	assert.Equal(t, physic.ZeroCelsius, got)

	got = Temperature(fixedpoint.Q21x10FromFloat(25))
	assert.InDelta(t, 25.0, float64(got-physic.ZeroCelsius)/float64(physic.Kelvin), 0.001)
}

func TestUnits_Pressure(t *testing.T) {
	got := Pressure(fixedpoint.UQ22x10FromFloat(1013.25))
	assert.InDelta(t, 101325.0, float64(got)/float64(physic.Pascal), 0.1)
}

func TestUnits_Humidity(t *testing.T) {
	assert.Equal(t, 45*physic.PercentRH, Humidity(45))
}

func TestUnits_Altitude(t *testing.T) {
	got := Altitude(fixedpoint.Q21x10FromFloat(123.5))
	assert.InDelta(t, 123.5, float64(got)/float64(physic.Metre), 0.001)
}
