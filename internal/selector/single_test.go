package selector

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSingleSelect(t *testing.T) {
	testCases := []struct {
		name string
		keys []Key
		want string
	}{
		{"enter picks first", []Key{KeyEnter}, "apple"},
		{"one down", []Key{KeyDown, KeyEnter}, "banana"},
		{"two down", []Key{KeyDown, KeyDown, KeyEnter}, "berry"},
		{"vi keys", []Key{"j", "j", "k", KeyEnter}, "banana"},
		{"down clamps at last row", []Key{KeyDown, KeyDown, KeyDown, KeyDown, KeyEnter}, "berry"},
		{"up clamps at first row", []Key{KeyUp, KeyUp, KeyEnter}, "apple"},
		{"unbound keys ignored", []Key{"x", KeyDown, "ctrl+z", KeyEnter}, "banana"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recordingRenderer{}
			got, err := SelectOne(script(tc.keys...), fruits, nil, quietOptions(r)...)
			if err != nil {
				t.Fatalf("SelectOne() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("SelectOne() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSingleCursorStaysInBounds(t *testing.T) {
	moves := []Key{KeyDown, KeyDown, KeyDown, KeyUp, KeyDown, KeyDown, KeyUp, KeyUp, KeyUp, KeyUp, KeyDown}
	for n := 1; n <= 4; n++ {
		labels := []string{"a", "b", "c", "d"}[:n]
		r := &recordingRenderer{}
		in := script(append(append([]Key(nil), moves...), KeyEnter)...)

		if _, err := SelectOne(in, ItemsFromStrings(labels...), nil, quietOptions(r)...); err != nil {
			t.Fatalf("n=%d: unexpected error %v", n, err)
		}
		for i, frame := range r.frames {
			c := cursorOf(frame)
			if c < 0 || c >= n {
				t.Fatalf("n=%d frame %d: cursor %d out of [0,%d)", n, i, c, n)
			}
		}
	}
}

func TestSingleClampingIsNotWraparound(t *testing.T) {
	r := &recordingRenderer{}
	_, err := SelectOne(script(KeyUp, KeyEnter), fruits, nil, quietOptions(r)...)
	if err != nil {
		t.Fatal(err)
	}
	// initial frame + frame after KeyUp
	if len(r.frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(r.frames))
	}
	if c := cursorOf(r.frames[1]); c != 0 {
		t.Errorf("up at row 0 moved cursor to %d", c)
	}

	r = &recordingRenderer{}
	_, err = SelectOne(script(KeyDown, KeyDown, KeyDown, KeyEnter), fruits, nil, quietOptions(r)...)
	if err != nil {
		t.Fatal(err)
	}
	if c := cursorOf(r.last()); c != 2 {
		t.Errorf("down at last row moved cursor to %d", c)
	}
}

func TestSingleCancel(t *testing.T) {
	testCases := []struct {
		name      string
		keys      []Key
		delivered int
	}{
		{"at first row", []Key{KeyCtrlC}, 1},
		{"after moving", []Key{KeyDown, KeyCtrlC}, 2},
		{"keys after cancel are not read", []Key{KeyDown, KeyDown, KeyCtrlC, KeyEnter}, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := script(tc.keys...)
			_, err := SelectOne(in, fruits, nil, quietOptions(&recordingRenderer{})...)
			if !errors.Is(err, ErrCanceled) {
				t.Fatalf("expected ErrCanceled, got %v", err)
			}
			if errors.Is(err, ErrIOFailure) {
				t.Error("cancel must not look like an I/O failure")
			}
			if in.delivered != tc.delivered {
				t.Errorf("read %d keys, want %d", in.delivered, tc.delivered)
			}
			if in.restored != 1 {
				t.Errorf("terminal restored %d times, want 1", in.restored)
			}
		})
	}
}

func TestSingleEmptyList(t *testing.T) {
	in := script(KeyEnter)
	r := &recordingRenderer{}
	_, err := SelectOne(in, []Item[string]{}, nil, quietOptions(r)...)
	if !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
	if in.rawEntered != 0 || len(r.frames) != 0 || len(r.visibility) != 0 {
		t.Error("empty list must not touch the terminal")
	}
}

func TestSingleNotATerminal(t *testing.T) {
	in := script(KeyEnter)
	in.notTerminal = true
	r := &recordingRenderer{}
	_, err := SelectOne(in, fruits, nil, quietOptions(r)...)
	if !errors.Is(err, ErrNotATerminal) {
		t.Fatalf("expected ErrNotATerminal, got %v", err)
	}
	if in.rawEntered != 0 {
		t.Error("raw mode entered for a non-terminal input")
	}
}

func TestSingleIOFailureRestoresTerminal(t *testing.T) {
	t.Run("read error", func(t *testing.T) {
		in := script(KeyDown)
		in.readErr = io.ErrClosedPipe
		r := &recordingRenderer{}
		_, err := SelectOne(in, fruits, nil, quietOptions(r)...)
		if !errors.Is(err, ErrIOFailure) || !errors.Is(err, io.ErrClosedPipe) {
			t.Fatalf("expected wrapped I/O failure, got %v", err)
		}
		if in.restored != 1 {
			t.Errorf("terminal restored %d times, want 1", in.restored)
		}
		if got := r.visibility; len(got) != 2 || got[0] || !got[1] {
			t.Errorf("cursor visibility sequence = %v, want [false true]", got)
		}
	})

	t.Run("input ends", func(t *testing.T) {
		in := script(KeyDown)
		_, err := SelectOne(in, fruits, nil, quietOptions(&recordingRenderer{})...)
		if !errors.Is(err, ErrIOFailure) {
			t.Fatalf("expected ErrIOFailure, got %v", err)
		}
		if in.restored != 1 {
			t.Error("terminal not restored")
		}
	})

	t.Run("write error", func(t *testing.T) {
		in := script(KeyDown, KeyDown, KeyEnter)
		r := &recordingRenderer{failDrawAt: 2}
		_, err := SelectOne(in, fruits, nil, quietOptions(r)...)
		if !errors.Is(err, ErrIOFailure) || !errors.Is(err, errDrawFailed) {
			t.Fatalf("expected wrapped draw failure, got %v", err)
		}
		if in.delivered != 1 {
			t.Errorf("loop continued after a write failure: %d keys read", in.delivered)
		}
		if in.restored != 1 {
			t.Error("terminal not restored")
		}
	})

	t.Run("raw mode unavailable", func(t *testing.T) {
		in := script(KeyEnter)
		in.rawErr = errors.New("ioctl failed")
		r := &recordingRenderer{}
		_, err := SelectOne(in, fruits, nil, quietOptions(r)...)
		if !errors.Is(err, ErrIOFailure) {
			t.Fatalf("expected ErrIOFailure, got %v", err)
		}
		if len(r.frames) != 0 {
			t.Error("drew before raw mode was entered")
		}
	})
}

func TestSingleCustomAction(t *testing.T) {
	var seen []string
	r := &recordingRenderer{}
	s := NewSingle(fruits, nil, quietOptions(r)...)
	s.Bind("o", SingleFunc(func(v string) { seen = append(seen, v) }))

	got, err := s.Run(script("o", KeyDown, "o", "o", KeyEnter))
	if err != nil {
		t.Fatal(err)
	}
	if got != "banana" {
		t.Errorf("got %q, want banana", got)
	}
	if diff := cmp.Diff([]string{"apple", "banana", "banana"}, seen); diff != "" {
		t.Errorf("custom action values mismatch (-want +got):\n%s", diff)
	}

	// initial, o, down, o, o
	if len(r.frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(r.frames))
	}
	if cursorOf(r.frames[1]) != 0 || cursorOf(r.frames[3]) != 1 || cursorOf(r.frames[4]) != 1 {
		t.Error("custom action moved the cursor")
	}
}

type countingTrigger struct{ calls int }

func (c *countingTrigger) OnTrigger(string) { c.calls++ }

func TestSingleCustomBeforeCancelRuns(t *testing.T) {
	trig := &countingTrigger{}
	km := DefaultSingleKeymap[string]()
	km.Insert("o", SingleTriggerAction[string](trig))

	_, err := SelectOne(script("o", KeyCtrlC, "o"), fruits, km, quietOptions(&recordingRenderer{})...)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	if trig.calls != 1 {
		t.Errorf("trigger called %d times, want 1", trig.calls)
	}
}

func TestSingleUnbind(t *testing.T) {
	s := NewSingle(fruits, nil, quietOptions(&recordingRenderer{})...)
	s.Unbind("j")
	s.Unbind("not-bound")

	got, err := s.Run(script("j", "j", KeyEnter))
	if err != nil {
		t.Fatal(err)
	}
	if got != "apple" {
		t.Errorf("unbound j still moved the cursor: got %q", got)
	}
}

func TestSingleDoesNotMutateItems(t *testing.T) {
	items := []Item[int]{NewItem("one", 1), NewItem("two", 2)}
	before := append([]Item[int](nil), items...)

	got, err := SelectOne(script(KeyDown, KeyEnter), items, nil, quietOptions(&recordingRenderer{})...)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	for i := range items {
		if items[i] != before[i] {
			t.Errorf("item %d changed", i)
		}
	}
}

func TestSingleHelpFooter(t *testing.T) {
	r := &recordingRenderer{}
	opts := append(quietOptions(r), WithHelp(true))
	if _, err := SelectOne(script(KeyEnter), fruits, nil, opts...); err != nil {
		t.Fatal(err)
	}
	if r.footer == "" {
		t.Error("help footer not set")
	}

	r = &recordingRenderer{}
	if _, err := SelectOne(script(KeyEnter), fruits, nil, quietOptions(r)...); err != nil {
		t.Fatal(err)
	}
	if r.footer != "" {
		t.Error("help footer set without WithHelp")
	}
}

func TestSingleClearOnExit(t *testing.T) {
	r := &recordingRenderer{}
	opts := append(quietOptions(r), WithClearOnExit(true))
	if _, err := SelectOne(script(KeyEnter), fruits, nil, opts...); err != nil {
		t.Fatal(err)
	}
	if r.last() != nil {
		t.Error("list was not erased on exit")
	}
}
