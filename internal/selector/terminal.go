package selector

import (
	"errors"
	"os"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"golang.org/x/term"

	apperrors "github.com/TonnyWong1052/picker/internal/errors"
)

// Input is an interactive source of key presses.
type Input interface {
	// IsTerminal reports whether the source is an interactive terminal.
	IsTerminal() bool
	// MakeRaw switches the terminal to raw mode and returns a function that
	// restores the previous mode.
	MakeRaw() (restore func() error, err error)
	// Listen blocks, calling onKey for every key press until onKey returns
	// stop or an error, or reading fails.
	Listen(onKey func(key Key) (stop bool, err error)) error
}

// StdinInput reads key presses from the process's standard input.
//
// When reading from the terminal fails, keyboard.Listen returns without
// releasing its /dev/tty handle or its simulation goroutine. Errors raised
// while handling a key are turned into a stop so that path releases both.
type StdinInput struct {
	file *os.File
}

// NewStdinInput returns an Input bound to os.Stdin.
func NewStdinInput() *StdinInput {
	return &StdinInput{file: os.Stdin}
}

// IsTerminal implements Input.
func (s *StdinInput) IsTerminal() bool {
	return term.IsTerminal(int(s.file.Fd()))
}

// MakeRaw implements Input.
func (s *StdinInput) MakeRaw() (func() error, error) {
	fd := int(s.file.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, oldState) }, nil
}

// Listen implements Input using atomicgo's key decoder.
func (s *StdinInput) Listen(onKey func(Key) (bool, error)) error {
	h := &keyHandler{onKey: onKey}
	if err := keyboard.Listen(h.handle); err != nil {
		return err
	}
	return h.err
}

// keyHandler adapts an onKey callback for keyboard.Listen, which only cleans
// up after a stop. A callback error is kept and reported as a stop.
type keyHandler struct {
	onKey func(Key) (bool, error)
	err   error
}

func (h *keyHandler) handle(k keys.Key) (bool, error) {
	stop, err := h.onKey(KeyOf(k))
	if err != nil {
		h.err = err
		return true, nil
	}
	return stop, nil
}

// session owns the terminal for one selection: raw mode and a hidden cursor.
type session struct {
	renderer    Renderer
	restore     func() error
	clearOnExit bool
	closed      bool
}

func openSession(in Input, r Renderer, clearOnExit bool) (*session, error) {
	restore, err := in.MakeRaw()
	if err != nil {
		return nil, apperrors.ErrTerminalIO("enter raw mode", err)
	}

	s := &session{renderer: r, restore: restore, clearOnExit: clearOnExit}
	if err := r.SetCursorVisible(false); err != nil {
		_ = s.close()
		return nil, apperrors.ErrTerminalIO("hide cursor", err)
	}
	return s, nil
}

func (s *session) draw(rows []Row) error {
	if err := s.renderer.Draw(rows); err != nil {
		return apperrors.ErrTerminalIO("write", err)
	}
	return nil
}

// close shows the cursor and leaves raw mode. Each step runs even when an
// earlier one fails; calling close twice is a no-op.
func (s *session) close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.clearOnExit {
		errs = append(errs, s.renderer.Draw(nil))
	}
	errs = append(errs, s.renderer.SetCursorVisible(true))
	if s.restore != nil {
		errs = append(errs, s.restore())
	}
	if err := errors.Join(errs...); err != nil {
		return apperrors.ErrTerminalIO("restore", err)
	}
	return nil
}

// asIOFailure classifies an error surfaced by Input.Listen. Errors raised by
// the engine itself already carry a code.
func asIOFailure(err error) error {
	if _, ok := apperrors.GetPickerError(err); ok {
		return err
	}
	return apperrors.ErrTerminalIO("read", err)
}
