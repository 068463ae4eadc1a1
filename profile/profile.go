package profile

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/barometric"
	"github.com/mklimuk/virtualdev/environment"
	"github.com/mklimuk/virtualdev/fixedpoint"
)

// Signal describes one synthesized measurement series: a base value with an
// optional sinusoidal swing, uniform jitter and a failure probability.
type Signal struct {
	Base      float64       `yaml:"base"`
	Amplitude float64       `yaml:"amplitude,omitempty"`
	Period    time.Duration `yaml:"period,omitempty"`
	Jitter    float64       `yaml:"jitter,omitempty"`
	ErrorRate float64       `yaml:"error_rate,omitempty"`
}

// Profile describes the behavior of a set of simulated devices.
type Profile struct {
	Name        string `yaml:"name"`
	Temperature Signal `yaml:"temperature"`
	Humidity    Signal `yaml:"humidity"`
	Pressure    Signal `yaml:"pressure"`
}

// Default returns a mild indoor climate at roughly sea level pressure.
func Default() *Profile {
	return &Profile{
		Name:        "default",
		Temperature: Signal{Base: 21.5, Amplitude: 1.5, Period: 10 * time.Minute, Jitter: 0.2},
		Humidity:    Signal{Base: 48, Amplitude: 5, Period: 15 * time.Minute, Jitter: 1},
		Pressure:    Signal{Base: 1013.25, Amplitude: 2, Period: time.Hour, Jitter: 0.3},
	}
}

func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile file: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("could not parse profile file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", p.Name, err)
	}
	return &p, nil
}

func (p *Profile) Save(path string) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not serialize profile: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("could not write profile file: %w", err)
	}
	return nil
}

func (p *Profile) Validate() error {
	for name, sig := range map[string]Signal{
		"temperature": p.Temperature,
		"humidity":    p.Humidity,
		"pressure":    p.Pressure,
	} {
		if sig.ErrorRate < 0 || sig.ErrorRate > 1 {
			return fmt.Errorf("%s: error_rate must be within [0, 1], got %f", name, sig.ErrorRate)
		}
		if sig.Amplitude != 0 && sig.Period <= 0 {
			return fmt.Errorf("%s: period must be positive when amplitude is set", name)
		}
		if sig.Jitter < 0 {
			return fmt.Errorf("%s: jitter must not be negative, got %f", name, sig.Jitter)
		}
	}
	return nil
}

// Value computes the signal value at time t.
func (s Signal) Value(t time.Time) float64 {
	v := s.Base
	if s.Amplitude != 0 && s.Period > 0 {
		phase := float64(t.UnixNano()) / float64(s.Period.Nanoseconds())
		v += s.Amplitude * math.Sin(2*math.Pi*phase)
	}
	if s.Jitter > 0 {
		v += s.Jitter * (2*rand.Float64() - 1)
	}
	return v
}

// Fail rolls the signal's failure probability.
func (s Signal) Fail() bool {
	return s.ErrorRate > 0 && rand.Float64() < s.ErrorRate
}

// TemperatureBehavior derives a temperature behavior function from the
// profile's temperature signal.
func (p *Profile) TemperatureBehavior() environment.TemperatureBehaviorFunc {
	sig := p.Temperature
	return func(ctx context.Context) (fixedpoint.Q21x10, error) {
		if sig.Fail() {
			return 0, virtualdev.ErrInvalidSample
		}
		return fixedpoint.Q21x10FromFloat(sig.Value(time.Now())), nil
	}
}

// HumidityBehavior derives a humidity behavior function. Values are
// clamped to [0, 100].
func (p *Profile) HumidityBehavior() environment.HumidityBehaviorFunc {
	sig := p.Humidity
	return func(ctx context.Context) (virtualdev.RelativeHumidity, error) {
		if sig.Fail() {
			return 0, virtualdev.ErrInvalidSample
		}
		v := math.Round(sig.Value(time.Now()))
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		return virtualdev.RelativeHumidity(v), nil
	}
}

// PressureBehavior derives a pressure behavior function.
func (p *Profile) PressureBehavior() barometric.PressureBehaviorFunc {
	sig := p.Pressure
	return func(ctx context.Context) (fixedpoint.UQ22x10, error) {
		if sig.Fail() {
			return 0, virtualdev.ErrInvalidSample
		}
		return fixedpoint.UQ22x10FromFloat(sig.Value(time.Now())), nil
	}
}
