package virtualdev

import (
	"periph.io/x/conn/v3/physic"

	"github.com/mklimuk/virtualdev/fixedpoint"
)

// Conversions from the fixed-point wire formats to physic quantities,
// mostly useful for display purposes.

func Temperature(t fixedpoint.Q21x10) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(t.Float()*float64(physic.Kelvin))
}

func Pressure(p fixedpoint.UQ22x10) physic.Pressure {
	// pressure readings are in hPa
	return physic.Pressure(p.Float() * 100 * float64(physic.Pascal))
}

func Humidity(rh RelativeHumidity) physic.RelativeHumidity {
	return physic.RelativeHumidity(rh) * physic.PercentRH
}

func Altitude(a fixedpoint.Q21x10) physic.Distance {
	return physic.Distance(a.Float() * float64(physic.Metre))
}
