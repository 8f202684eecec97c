package sim

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// scriptedRNG returns its values in order, wrapping around.
type scriptedRNG struct {
	values []float64
	next   int
}

func (r *scriptedRNG) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

func fixedRNG(v float64) *scriptedRNG {
	return &scriptedRNG{values: []float64{v}}
}

func testConfig() config.FlappyConfig {
	return config.DefaultFlappyConfig()
}
