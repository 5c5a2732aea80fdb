// SPDX-License-Identifier: EPL-2.0

package events

import (
	"errors"
	"slices"
	"testing"
)

func TestBus_OrderAndMultiplicity(t *testing.T) {
	t.Parallel()

	var b Bus
	var got []string
	for _, name := range []string{"a", "b", "c"} {
		if err := b.On(Play, func() { got = append(got, name) }); err != nil {
			t.Fatalf("On() error = %v", err)
		}
	}

	b.Publish(Play)
	b.Publish(Play)

	want := []string{"a", "b", "c", "a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("handlers ran %v, want %v", got, want)
	}
}

func TestBus_SameHandlerTwice(t *testing.T) {
	t.Parallel()

	var b Bus
	calls := 0
	h := Handler(func() { calls++ })
	_ = b.On(Finish, h)
	_ = b.On(Finish, h)

	b.Publish(Finish)

	if calls != 2 || b.Len(Finish) != 2 {
		t.Errorf("calls = %d, Len() = %d, want 2 and 2", calls, b.Len(Finish))
	}
}

func TestBus_KindsAreIndependent(t *testing.T) {
	t.Parallel()

	var b Bus
	count := map[Kind]int{}
	for _, k := range []Kind{Play, Pause, Finish} {
		_ = b.On(k, func() { count[k]++ })
	}

	b.Publish(Pause)

	if count[Pause] != 1 || count[Play] != 0 || count[Finish] != 0 {
		t.Errorf("counts = %v, want only pause once", count)
	}
}

func TestBus_PublishWithoutHandlers(t *testing.T) {
	t.Parallel()

	var b Bus
	b.Publish(Finish)
	if b.Len(Finish) != 0 {
		t.Errorf("Len() = %d, want 0", b.Len(Finish))
	}
}

func TestBus_Clear(t *testing.T) {
	t.Parallel()

	var b Bus
	fired := false
	_ = b.On(Play, func() { fired = true })
	b.Clear()
	b.Publish(Play)

	if fired {
		t.Error("handler fired after Clear")
	}
	if b.Len(Play) != 0 {
		t.Errorf("Len() = %d, want 0", b.Len(Play))
	}
}

func TestBus_HandlerMayReenter(t *testing.T) {
	t.Parallel()

	var b Bus
	_ = b.On(Finish, func() {
		_ = b.On(Finish, func() {})
		b.Clear()
	})

	b.Publish(Finish)
	if b.Len(Finish) != 0 {
		t.Errorf("Len() = %d, want 0", b.Len(Finish))
	}
}

func TestBus_Rejects(t *testing.T) {
	t.Parallel()

	var b Bus
	if err := b.On(Kind(0), func() {}); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("On(Kind(0)) error = %v, want ErrUnknownEvent", err)
	}
	if err := b.On(Kind(99), func() {}); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("On(Kind(99)) error = %v, want ErrUnknownEvent", err)
	}
	if err := b.On(Play, nil); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("On(nil) error = %v, want ErrUnknownEvent", err)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{Play, Pause, Finish} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}

	if _, err := ParseKind("stop"); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("ParseKind(\"stop\") error = %v, want ErrUnknownEvent", err)
	}
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Errorf("Kind(7).String() = %q", got)
	}
}
