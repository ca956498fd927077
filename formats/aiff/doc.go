// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source whose samples are float32 values in
// [-1.0, 1.0]. Only 16-bit PCM AIFF is supported; other bit depths and
// AIFF-C compression return ErrOnlyPCM16bitSupported. Encoding is not
// supported.
package aiff
