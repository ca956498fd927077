// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and encoding.
//
// Decoding uses github.com/go-audio/wav, so files with extra RIFF chunks
// (LIST, fact, ...) and PCM bit depths of 8 to 32 are handled. Encoding
// writes plain mono 16-bit PCM, which is the only output format the
// augmenter produces.
package wav
