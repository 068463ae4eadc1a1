package barometric

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/fixedpoint"
)

// DefaultSeaLevelPressure is the SLP assumed for altitude correction when
// none has been supplied: 1013.25 hPa.
const DefaultSeaLevelPressure fixedpoint.UQ22x10 = 1037568

// PressureBehaviorFunc defines the function signature for simulated
// pressure behavior. It returns the barometric pressure in hPa or an error.
type PressureBehaviorFunc func(ctx context.Context) (fixedpoint.UQ22x10, error)

// StaticPressure returns a behavior producing a constant pressure.
func StaticPressure(hPa float64) PressureBehaviorFunc {
	value := fixedpoint.UQ22x10FromFloat(hPa)
	return func(ctx context.Context) (fixedpoint.UQ22x10, error) {
		return value, nil
	}
}

// SimPressureSensor is a virtual pressure device driven by a behavior
// function.
type SimPressureSensor struct {
	behavior PressureBehaviorFunc
}

func NewSimPressureSensor(behavior PressureBehaviorFunc) *SimPressureSensor {
	return &SimPressureSensor{behavior: behavior}
}

func (s *SimPressureSensor) ReadPressure(ctx context.Context) (fixedpoint.UQ22x10, error) {
	return s.behavior(ctx)
}

// Barometer derives SLP-corrected altitude from a pressure source. The sea
// level pressure may be adjusted concurrently with reads.
type Barometer struct {
	source virtualdev.PressureSensor

	mu  sync.Mutex
	slp fixedpoint.UQ22x10
}

func NewBarometer(source virtualdev.PressureSensor) *Barometer {
	return &Barometer{source: source, slp: DefaultSeaLevelPressure}
}

func (b *Barometer) ReadPressure(ctx context.Context) (fixedpoint.UQ22x10, error) {
	pressure, err := b.source.ReadPressure(ctx)
	if err != nil {
		return 0, fmt.Errorf("pressure read failed: %w", err)
	}
	return pressure, nil
}

func (b *Barometer) ReadAltitude(ctx context.Context) (fixedpoint.Q21x10, error) {
	pressure, err := b.source.ReadPressure(ctx)
	if err != nil {
		return 0, fmt.Errorf("pressure read failed: %w", err)
	}
	return altitude(pressure, b.SeaLevelPressure()), nil
}

func (b *Barometer) SetSeaLevelPressure(slp fixedpoint.UQ22x10) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if slp == 0 {
		slp = DefaultSeaLevelPressure
	}
	b.slp = slp
}

func (b *Barometer) SeaLevelPressure() fixedpoint.UQ22x10 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slp
}

// altitude applies the hypsometric formula for the standard atmosphere:
// h = 44330 * (1 - (p/p0)^(1/5.255)) metres.
func altitude(pressure, slp fixedpoint.UQ22x10) fixedpoint.Q21x10 {
	ratio := pressure.Float() / slp.Float()
	metres := 44330.0 * (1.0 - math.Pow(ratio, 1.0/5.255))
	return fixedpoint.Q21x10FromFloat(metres)
}

var _ virtualdev.Barometer = &Barometer{}
var _ virtualdev.PressureSensor = &SimPressureSensor{}
