package engine

import "math"

// Config holds the default sampling and integration windows. The zero
// value is not useful; start from DefaultConfig.
type Config struct {
	PlotStart float64
	PlotEnd   float64
	PlotStep  float64

	PolarStart float64
	PolarEnd   float64
	PolarStep  float64

	IntegStart float64
	IntegEnd   float64
	IntegStep  float64
}

// DefaultConfig returns the historical defaults: a [-5, 5] window with
// step 0.01 for plotting and integration, one full turn for polar sweeps.
func DefaultConfig() Config {
	return Config{
		PlotStart: -5,
		PlotEnd:   5,
		PlotStep:  0.01,

		PolarStart: 0,
		PolarEnd:   2 * math.Pi,
		PolarStep:  0.01,

		IntegStart: -5,
		IntegEnd:   5,
		IntegStep:  0.01,
	}
}
