package selector

import (
	"errors"
	"io"

	"github.com/TonnyWong1052/picker/internal/logging"
)

// scriptedInput replays a fixed key sequence.
type scriptedInput struct {
	keys        []Key
	notTerminal bool
	rawErr      error
	readErr     error // returned once the keys run out; io.EOF when nil

	rawEntered int
	restored   int
	delivered  int
}

func script(keys ...Key) *scriptedInput {
	return &scriptedInput{keys: keys}
}

func (s *scriptedInput) IsTerminal() bool { return !s.notTerminal }

func (s *scriptedInput) MakeRaw() (func() error, error) {
	if s.rawErr != nil {
		return nil, s.rawErr
	}
	s.rawEntered++
	return func() error {
		s.restored++
		return nil
	}, nil
}

func (s *scriptedInput) Listen(onKey func(Key) (bool, error)) error {
	for _, k := range s.keys {
		s.delivered++
		stop, err := onKey(k)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	if s.readErr != nil {
		return s.readErr
	}
	return io.EOF
}

// recordingRenderer keeps every frame it is asked to draw.
type recordingRenderer struct {
	frames     [][]Row
	visibility []bool
	footer     string
	failDrawAt int // 1-based draw call that fails; 0 never fails
	draws      int
}

var errDrawFailed = errors.New("draw failed")

func (r *recordingRenderer) Draw(rows []Row) error {
	r.draws++
	if r.failDrawAt != 0 && r.draws == r.failDrawAt {
		return errDrawFailed
	}
	r.frames = append(r.frames, append([]Row(nil), rows...))
	return nil
}

func (r *recordingRenderer) SetCursorVisible(visible bool) error {
	r.visibility = append(r.visibility, visible)
	return nil
}

func (r *recordingRenderer) SetFooter(footer string) {
	r.footer = footer
}

func (r *recordingRenderer) last() []Row {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// cursorOf returns the index of the row drawn with cursor emphasis.
func cursorOf(rows []Row) int {
	for i, row := range rows {
		if row.Emphasis == EmphasisCursor {
			return i
		}
	}
	return -1
}

func quietOptions(r Renderer) []Option {
	return []Option{
		WithRenderer(r),
		WithLogger(logging.NewWithWriter("selector", io.Discard, logging.DebugLevel)),
	}
}

var fruits = ItemsFromStrings("apple", "banana", "berry")
