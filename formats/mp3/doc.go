// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source whose samples are float32 values in
// [-1.0, 1.0]. Output is always stereo interleaved; use audio.NewMonoMixer
// to fold it down. Encoding is not supported.
package mp3
