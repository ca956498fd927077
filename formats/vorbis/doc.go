// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode .ogg files.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source whose samples are float32 values in
// [-1.0, 1.0], interleaved for multi-channel files. Encoding is not
// supported.
package vorbis
