// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"testing"
)

type nopDecoder struct{}

func (nopDecoder) Decode(r io.Reader) (Source, error) {
	return newSilentSource(16000, 1, 0), nil
}

func TestRegistry_RegisterGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(".wav", nopDecoder{})

	if _, ok := reg.Get(".wav"); !ok {
		t.Error("Get(\".wav\") not found after Register")
	}

	if _, ok := reg.Get(".mp3"); ok {
		t.Error("Get(\".mp3\") found without Register")
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(".WAV", nopDecoder{})

	if _, ok := reg.Get(".wav"); !ok {
		t.Error("Get(\".wav\") did not match Register(\".WAV\")")
	}

	if _, ok := reg.Get(".Wav"); !ok {
		t.Error("Get(\".Wav\") did not match Register(\".WAV\")")
	}
}

func TestRegistry_Extensions(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(".wav", nopDecoder{})
	reg.Register(".ogg", nopDecoder{})

	exts := reg.Extensions()
	slices.Sort(exts)

	want := []string{".ogg", ".wav"}
	if !slices.Equal(exts, want) {
		t.Errorf("Extensions() = %v, want %v", exts, want)
	}
}
