// SPDX-License-Identifier: EPL-2.0

// Package augment implements the randomized waveform transformations used to
// expand audio datasets.
//
// A Chain holds an ordered list of Steps. Each Step pairs a Transform with
// an activation probability; on every Chain.Apply call each step
// independently draws whether it fires, so for a single invocation all,
// none, or any subset of the transforms may run, always in chain order.
//
// The four transforms the augmenter chains, in order:
//
//   - AddNoise: adds Gaussian noise with an amplitude drawn from a window
//   - TimeStretch: changes duration without changing pitch (overlap-add)
//   - PitchShift: changes pitch without changing duration
//   - TimeShift: circularly rotates the waveform by a fraction of its length
//
// Every random decision (activation and parameter draws) comes from the
// single *rand.Rand handed to NewChain, in a fixed order: activation first,
// then the parameter, step by step. Two runs with the same seed, the same
// chain and the same inputs therefore produce identical output. Note that
// the draw sequence is shared across Apply calls, so reproducibility holds
// for whole runs, not for individual files in isolation.
//
// Transforms never mutate their input; Apply returns a new waveform.
package augment
