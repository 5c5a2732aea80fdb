// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"sync"

	"github.com/ik5/wavescope/playback"
)

// Output is an in-memory playback.Output. Nothing plays until a test
// pumps a player.
type Output struct {
	mu        sync.Mutex
	rate      int
	players   []*Player
	resumes   int
	resumeErr error
	closed    bool
}

var _ playback.Output = (*Output)(nil)

func NewOutput(rate int) *Output {
	return &Output{rate: rate}
}

func (o *Output) SampleRate() int { return o.rate }

func (o *Output) NewPlayer(r io.Reader) playback.Player {
	o.mu.Lock()
	defer o.mu.Unlock()

	p := &Player{r: r}
	o.players = append(o.players, p)
	return p
}

// FailResume makes every later Resume return err.
func (o *Output) FailResume(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.resumeErr = err
}

func (o *Output) Resume() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.resumes++
	return o.resumeErr
}

func (o *Output) Resumes() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.resumes
}

func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.closed = true
	return nil
}

func (o *Output) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.closed
}

// Players returns every player created so far, oldest first.
func (o *Output) Players() []*Player {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]*Player(nil), o.players...)
}

// Last returns the newest player, or nil.
func (o *Output) Last() *Player {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.players) == 0 {
		return nil
	}
	return o.players[len(o.players)-1]
}

// Live counts players that were created and not closed.
func (o *Output) Live() int {
	o.mu.Lock()
	players := append([]*Player(nil), o.players...)
	o.mu.Unlock()

	n := 0
	for _, p := range players {
		if !p.Closed() {
			n++
		}
	}
	return n
}

// Player is a playback.Player that reads from its stream only when pumped.
type Player struct {
	mu      sync.Mutex
	r       io.Reader
	playing bool
	drained bool
	closed  bool
	err     error
	read    int
}

func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed && !p.drained {
		p.playing = true
	}
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.playing
}

func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

// Fail simulates a device error: the player stops and reports err.
func (p *Player) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.err = err
	p.playing = false
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.playing = false
	return nil
}

func (p *Player) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closed
}

// BytesRead is the number of bytes pulled from the stream so far.
func (p *Player) BytesRead() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.read
}

// Pump reads up to n bytes from the stream if the player is playing. At
// the end of the stream the player stops, as a device does once its
// buffer runs dry.
func (p *Player) Pump(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.playing {
		return 0
	}

	buf := make([]byte, n)
	got := 0
	for got < n {
		m, err := p.r.Read(buf[got:])
		got += m
		if errors.Is(err, io.EOF) {
			p.drained = true
			p.playing = false
			break
		}
		if err != nil {
			p.err = err
			p.playing = false
			break
		}
		if m == 0 {
			break
		}
	}
	p.read += got
	return got
}

// Drain pumps until the stream ends or the player stops.
func (p *Player) Drain() int {
	total := 0
	for {
		n := p.Pump(4096)
		total += n
		if n == 0 || !p.IsPlaying() {
			return total
		}
	}
}
