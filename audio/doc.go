// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming building blocks the augmenter loads
// waveforms through.
//
// A Source yields interleaved float32 samples in [-1, 1]. Decoders for the
// supported container formats (see the formats subpackages) produce Sources,
// and the Resampler and MonoMixer wrap a Source to change its rate or
// channel count. The Registry maps file extensions to decoders so the
// directory walker can dispatch on filename alone.
package audio
