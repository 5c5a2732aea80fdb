// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/formats"
)

// DefaultWatchInterval is how often a Source checks whether its player
// has drained.
const DefaultWatchInterval = 10 * time.Millisecond

// Hooks are raw playback transitions. They run without any Source lock
// held and may call back into the Source.
type Hooks struct {
	Started func()
	Paused  func()
	Ended   func()
}

// Config carries the collaborators of a Source. Zero fields get defaults:
// FileOpener, formats.NewRegistry(), DefaultWatchInterval and a no-op logger.
type Config struct {
	Output        Output
	Opener        Opener
	Registry      *audio.Registry
	Hooks         Hooks
	Logger        *zap.Logger
	WatchInterval time.Duration
}

// Source is a single playable resource on an Output.
type Source struct {
	mu       sync.Mutex
	out      Output
	opener   Opener
	registry *audio.Registry
	hooks    Hooks
	logger   *zap.Logger
	interval time.Duration

	locator string
	rc      io.ReadCloser
	stream  audio.Source
	pull    *pull
	player  Player
	cancel  context.CancelFunc
	gen     uint64

	state  State
	err    error
	closed bool

	proc atomic.Pointer[processorRef]
}

// NewSource returns an idle Source playing through cfg.Output, which the
// Source owns from here on and closes in Close.
func NewSource(cfg Config) (*Source, error) {
	if cfg.Output == nil {
		return nil, fmt.Errorf("%w: nil output", ErrOutputUnavailable)
	}

	s := &Source{
		out:      cfg.Output,
		opener:   cfg.Opener,
		registry: cfg.Registry,
		hooks:    cfg.Hooks,
		logger:   cfg.Logger,
		interval: cfg.WatchInterval,
	}
	if s.opener == nil {
		s.opener = FileOpener{}
	}
	if s.registry == nil {
		s.registry = formats.NewRegistry()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.interval <= 0 {
		s.interval = DefaultWatchInterval
	}

	return s, nil
}

// Load replaces the current resource with locator. The previous one is
// stopped and released first; if it was playing, the Paused hook fires.
// On failure the Source is left idle and the error wraps ErrInvalidResource.
func (s *Source) Load(locator string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}

	hook := s.unloadLocked()

	err := s.openLocked(locator)
	if err == nil {
		s.locator = locator
		s.state = StateLoaded
		s.logger.Debug("resource loaded", zap.String("locator", locator))
	}
	s.mu.Unlock()

	fire(hook)
	return err
}

// Release stops and frees the current resource, leaving the Source idle.
// If it was playing, the Paused hook fires.
func (s *Source) Release() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	hook := s.unloadLocked()
	s.mu.Unlock()

	fire(hook)
}

func (s *Source) unloadLocked() func() {
	var hook func()
	if s.state == StatePlaying {
		hook = s.hooks.Paused
	}
	s.releaseLocked()
	s.locator = ""
	s.state = StateIdle
	s.err = nil
	return hook
}

func (s *Source) openLocked(locator string) error {
	if strings.TrimSpace(locator) == "" {
		return fmt.Errorf("%w: empty locator", ErrInvalidResource)
	}

	format := formats.FormatOf(locator)
	dec, ok := s.registry.Get(format)
	if !ok {
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidResource, format)
	}

	rc, err := s.opener.Open(locator)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResource, err)
	}

	src, err := dec.Decode(rc)
	if err != nil {
		_ = rc.Close()
		return fmt.Errorf("%w: decode %s: %w", ErrInvalidResource, format, err)
	}

	stream, err := audio.Conform(src, s.out.SampleRate())
	if err != nil {
		_ = src.Close()
		_ = rc.Close()
		return fmt.Errorf("%w: %w", ErrInvalidResource, err)
	}

	s.gen++
	s.rc = rc
	s.stream = stream
	s.pull = newPull(stream, &s.proc)
	s.player = s.out.NewPlayer(s.pull)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.watch(ctx, s.gen)

	return nil
}

// releaseLocked stops and frees the current resource. It never fires hooks.
func (s *Source) releaseLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.player != nil {
		s.player.Pause()
		if err := s.player.Close(); err != nil {
			s.logger.Warn("closing player", zap.Error(err))
		}
		s.player = nil
	}
	if s.pull != nil {
		s.pull.detach()
		s.pull = nil
	}
	if s.stream != nil {
		_ = s.stream.Close()
		s.stream = nil
	}
	if s.rc != nil {
		_ = s.rc.Close()
		s.rc = nil
	}
	s.gen++
}

// Play starts or resumes playback. After a natural end it restarts the
// resource from the beginning. Without a resource it does nothing.
func (s *Source) Play() {
	s.mu.Lock()
	hook := s.playLocked()
	s.mu.Unlock()

	fire(hook)
}

// Pause pauses playback. It does nothing unless playing.
func (s *Source) Pause() {
	s.mu.Lock()
	hook := s.pauseLocked()
	s.mu.Unlock()

	fire(hook)
}

// Toggle pauses when playing and plays otherwise.
func (s *Source) Toggle() {
	s.mu.Lock()
	var hook func()
	if s.state == StatePlaying {
		hook = s.pauseLocked()
	} else {
		hook = s.playLocked()
	}
	s.mu.Unlock()

	fire(hook)
}

// playLocked returns the hook to fire once the lock is released.
func (s *Source) playLocked() func() {
	if s.closed || s.player == nil || s.state == StatePlaying {
		return nil
	}

	if s.state == StateFinished {
		locator := s.locator
		s.releaseLocked()
		if err := s.openLocked(locator); err != nil {
			s.err = err
			s.state = StateIdle
			s.locator = ""
			s.logger.Error("reopening resource", zap.String("locator", locator), zap.Error(err))
			return nil
		}
	}

	// Best effort: a device that refuses to resume is not an engine error.
	if err := s.out.Resume(); err != nil {
		s.logger.Debug("output resume refused", zap.Error(err))
	}

	s.player.Play()
	s.state = StatePlaying
	s.err = nil
	return s.hooks.Started
}

func (s *Source) pauseLocked() func() {
	if s.state != StatePlaying {
		return nil
	}

	s.player.Pause()
	s.state = StatePaused
	return s.hooks.Paused
}

// watch polls the player of generation gen until it drains, then marks the
// resource finished. A decode or device error instead moves the Source out
// of Playing and is kept for Err.
func (s *Source) watch(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		hook, stop := s.check(gen)
		fire(hook)
		if stop {
			return
		}
	}
}

func (s *Source) check(gen uint64) (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.gen {
		return nil, true
	}
	if s.state != StatePlaying || s.player.IsPlaying() {
		return nil, false
	}

	ended, err := s.pull.result()
	if err == nil {
		err = s.player.Err()
	}

	if err != nil {
		s.err = err
		s.state = StatePaused
		s.player.Pause()
		s.logger.Error("playback stopped", zap.String("locator", s.locator), zap.Error(err))
		return nil, false
	}
	if !ended {
		return nil, false
	}

	s.state = StateFinished
	s.logger.Debug("resource finished", zap.String("locator", s.locator))
	return s.hooks.Ended, false
}

// Connect routes the decoded stream through p before the output.
// It replaces any processor connected earlier.
func (s *Source) Connect(p Processor) {
	if p == nil {
		s.proc.Store(nil)
		return
	}
	s.proc.Store(&processorRef{p: p})
}

// Disconnect removes the processor. Calling it twice is harmless.
func (s *Source) Disconnect() {
	s.proc.Store(nil)
}

// IsPlaying reports whether the resource is advancing.
func (s *Source) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == StatePlaying
}

// Loaded reports whether a resource is attached.
func (s *Source) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.player != nil
}

func (s *Source) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Locator returns the locator of the loaded resource, or "".
func (s *Source) Locator() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locator
}

// Err returns the error that last stopped playback, if any.
func (s *Source) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Close releases the resource and the output. It fires no hooks and is
// safe to call more than once.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.releaseLocked()
	s.proc.Store(nil)
	s.locator = ""
	s.state = StateIdle

	if err := s.out.Close(); err != nil {
		s.logger.Warn("closing output", zap.Error(err))
	}
	return nil
}

func fire(hook func()) {
	if hook != nil {
		hook()
	}
}
