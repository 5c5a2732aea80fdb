// SPDX-License-Identifier: EPL-2.0

// Package events is the playback lifecycle publish/subscribe registry.
package events

import (
	"errors"
	"fmt"
	"sync"
)

var ErrUnknownEvent = errors.New("unknown event")

// Kind is a playback lifecycle event.
type Kind int

const (
	Play Kind = iota + 1
	Pause
	Finish
)

func (k Kind) String() string {
	switch k {
	case Play:
		return "play"
	case Pause:
		return "pause"
	case Finish:
		return "finish"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) valid() bool { return k >= Play && k <= Finish }

// ParseKind maps "play", "pause" and "finish" to their Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "play":
		return Play, nil
	case "pause":
		return Pause, nil
	case "finish":
		return Finish, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

type Handler func()

// Bus holds handlers per Kind. The zero value is ready to use.
type Bus struct {
	mu       sync.Mutex
	handlers map[Kind][]Handler
}

// On registers h for k. Handlers are not deduplicated: one registered
// twice fires twice.
func (b *Bus) On(k Kind, h Handler) error {
	if !k.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownEvent, k)
	}
	if h == nil {
		return fmt.Errorf("%w: nil handler for %v", ErrUnknownEvent, k)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers == nil {
		b.handlers = make(map[Kind][]Handler)
	}
	b.handlers[k] = append(b.handlers[k], h)
	return nil
}

// Publish calls every handler registered for k, in registration order, on
// the calling goroutine. Handlers run without the bus lock held, so they
// may register more handlers or clear the bus; such changes apply from the
// next Publish.
func (b *Bus) Publish(k Kind) {
	b.mu.Lock()
	hs := b.handlers[k]
	b.mu.Unlock()

	for _, h := range hs {
		h()
	}
}

// Len returns the number of handlers registered for k.
func (b *Bus) Len(k Kind) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.handlers[k])
}

// Clear drops every handler.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = nil
}
