// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

type fakeReader struct {
	channels int
	data     []float32
}

func (f *fakeReader) SampleRate() int { return 48000 }
func (f *fakeReader) Channels() int   { return f.channels }

func (f *fakeReader) Read(p []float32) (int, error) {
	if len(f.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestSource_WholeFrames(t *testing.T) {
	t.Parallel()

	dec := &fakeReader{channels: 2, data: []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}}
	src := &source{dec: dec, channels: 2}

	// An odd buffer must not split a frame.
	buf := make([]float32, 5)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}
	n, err = src.ReadSamples(buf)
	if err != nil || n != 2 || buf[0] != 0.3 || buf[1] != -0.3 {
		t.Fatalf("ReadSamples() = %d, %v, %v; want the last frame", n, err, buf[:n])
	}
	if n, err = src.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ShortBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeReader{channels: 2, data: []float32{1, 1}}, channels: 2}
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples() = %d, %v; want 0, nil", n, err)
	}
}

func TestDecoder_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("OggS but not really"))); err == nil {
		t.Error("Decode() accepted garbage")
	}
}
