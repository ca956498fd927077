// SPDX-License-Identifier: EPL-2.0

package augment

import "math/rand"

// Window is an inclusive [Min, Max] range a transform parameter is drawn
// from uniformly.
type Window struct {
	Min float64
	Max float64
}

func (w Window) draw(rng *rand.Rand) float64 {
	return w.Min + rng.Float64()*(w.Max-w.Min)
}

// Transform derives a new waveform from samples at the given sample rate.
// Implementations must not mutate samples and must take all randomness from
// rng so runs stay reproducible under a fixed seed.
type Transform interface {
	Name() string
	Apply(rng *rand.Rand, samples []float32, rate int) []float32
}

// Step is one chain entry: a transform and its independent activation
// probability in [0, 1].
type Step struct {
	Transform   Transform
	Probability float64
}

// Chain applies its steps in order, each firing independently per Apply
// call according to its probability.
type Chain struct {
	rng   *rand.Rand
	steps []Step
}

// NewChain builds a chain over the given steps. The chain owns no state
// besides rng; it is built once and reused for every augmentation pass.
func NewChain(rng *rand.Rand, steps ...Step) *Chain {
	return &Chain{
		rng:   rng,
		steps: steps,
	}
}

// Steps returns the chain's steps in application order.
func (c *Chain) Steps() []Step { return c.steps }

// Apply runs the chain once over samples. For each step the activation is
// drawn first; only active steps draw their parameter and run. The input is
// never mutated, though when no step fires the input slice is returned
// as-is.
func (c *Chain) Apply(samples []float32, rate int) []float32 {
	out := samples
	for _, s := range c.steps {
		if c.rng.Float64() >= s.Probability {
			continue
		}
		out = s.Transform.Apply(c.rng, out, rate)
	}
	return out
}
