// SPDX-License-Identifier: EPL-2.0

package playback_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/wavescope/playback"
)

func TestFileOpener(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "x.bin")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, loc := range []string{path, "file://" + path} {
		rc, err := playback.FileOpener{}.Open(loc)
		if err != nil {
			t.Errorf("Open(%q) error = %v", loc, err)
			continue
		}
		b, _ := io.ReadAll(rc)
		_ = rc.Close()
		if string(b) != "data" {
			t.Errorf("Open(%q) read %q", loc, b)
		}
	}

	if _, err := (playback.FileOpener{}).Open("http://example.com/x.wav"); err == nil {
		t.Error("Open(http URL) succeeded")
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	want := map[playback.State]string{
		playback.StateIdle:     "Idle",
		playback.StateLoaded:   "Loaded",
		playback.StatePlaying:  "Playing",
		playback.StatePaused:   "Paused",
		playback.StateFinished: "Finished",
	}
	for s, w := range want {
		if s.String() != w {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), w)
		}
	}
}
