// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/wavescope/formats/wav"
	"github.com/ik5/wavescope/playback"
)

// WriteWAV encodes samples into dir/name and returns the path.
func WriteWAV(t testing.TB, dir, name string, rate, channels int, samples []float32) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if err := wav.Encode(f, rate, channels, samples); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

// Sine returns frames samples of a mono sine at freq Hz scaled by amp.
func Sine(rate, frames int, freq, amp float64) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = float32(amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return out
}

// NopOpener opens every locator as an empty stream.
var NopOpener = playback.OpenerFunc(func(string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
})
