// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// fakeMP3 serves canned 16-bit little-endian PCM bytes.
type fakeMP3 struct {
	data []byte
	pos  int
	rate int
}

func newFakeMP3(rate int, samples []int16) *fakeMP3 {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:i*2+2], uint16(s))
	}
	return &fakeMP3{data: data, rate: rate}
}

func (f *fakeMP3) SampleRate() int { return f.rate }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 16384, -16384, 32767}
	src := &source{
		dec:        newFakeMP3(44100, pcm),
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 64),
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(pcm) {
		t.Fatalf("ReadSamples() = %d samples, want %d", n, len(pcm))
	}

	for i, want := range pcm {
		expected := float32(want) / 32768.0
		if math.Abs(float64(dst[i]-expected)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, dst[i], expected)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        newFakeMP3(48000, nil),
		sampleRate: 48000,
		channels:   2,
	}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        newFakeMP3(44100, []int16{1, 2}),
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 16),
	}

	dst := make([]float32, 8)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after exhaustion = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecoder_InvalidData(t *testing.T) {
	t.Parallel()

	dec := Decoder{}
	_, err := dec.Decode(bytes.NewReader([]byte("this is not an mp3 stream")))
	if err == nil {
		t.Fatal("Decode() succeeded on garbage input")
	}
}
