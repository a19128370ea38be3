package selector

import (
	"io"

	"github.com/sirupsen/logrus"

	apperrors "github.com/TonnyWong1052/picker/internal/errors"
)

// Single lets the user pick exactly one item.
type Single[T any] struct {
	items  []Item[T]
	keymap *Keymap[SingleAction[T]]
	opts   options
}

// NewSingle returns a single-select engine over items. A nil keymap means
// DefaultSingleKeymap. The engine reads items and keymap but never modifies
// items; Bind and Unbind modify keymap in place.
func NewSingle[T any](items []Item[T], keymap *Keymap[SingleAction[T]], opts ...Option) *Single[T] {
	if keymap == nil {
		keymap = DefaultSingleKeymap[T]()
	}
	return &Single[T]{items: items, keymap: keymap, opts: newOptions(opts)}
}

// Bind assigns action to key, replacing any previous binding.
func (s *Single[T]) Bind(key Key, action SingleAction[T]) {
	s.keymap.Insert(key, action)
}

// Unbind removes the binding for key, if any.
func (s *Single[T]) Unbind(key Key) {
	s.keymap.Remove(key)
}

// Keymap returns the engine's keymap.
func (s *Single[T]) Keymap() *Keymap[SingleAction[T]] {
	return s.keymap
}

// Run shows the list and blocks until the user selects or cancels. It
// returns ErrEmptyList, ErrNotATerminal, ErrCanceled or ErrIOFailure
// (matched with errors.Is) when no value is chosen. The terminal is
// restored on every return path.
func (s *Single[T]) Run(in Input) (value T, err error) {
	var zero T
	if len(s.items) == 0 {
		return zero, apperrors.ErrEmptyItemList()
	}
	if err := s.opts.checkTerminal(in); err != nil {
		return zero, err
	}

	log := s.opts.logEntry("single", len(s.items))
	renderer := s.opts.newRenderer(func() string { return singleHelp(s.keymap) })

	sess, err := openSession(in, renderer, s.opts.clearOnExit)
	if err != nil {
		log.WithError(err).Error("failed to open terminal session")
		return zero, err
	}
	defer func() {
		if cerr := sess.close(); cerr != nil && err == nil {
			log.WithError(cerr).Error("failed to restore terminal")
			value, err = zero, cerr
		}
	}()
	log.Debug("selection started")

	st := &singleState[T]{items: s.items}
	if err := sess.draw(st.rows()); err != nil {
		return zero, err
	}

	var done, canceled bool
	lerr := in.Listen(func(k Key) (bool, error) {
		a, ok := s.keymap.Lookup(k)
		if !ok {
			log.WithField("key", k).Debug("unbound key ignored")
			return false, sess.draw(st.rows())
		}

		done, canceled = st.apply(a)
		log.WithFields(logrus.Fields{
			"key":    k,
			"action": a.Kind().String(),
			"cursor": st.cursor,
		}).Debug("key dispatched")
		if done {
			return true, nil
		}
		return false, sess.draw(st.rows())
	})
	if lerr != nil {
		err = asIOFailure(lerr)
		log.WithError(err).Error("selection aborted")
		return zero, err
	}
	if !done {
		return zero, apperrors.ErrTerminalIO("read", io.ErrUnexpectedEOF)
	}
	if canceled {
		log.Info("selection canceled")
		return zero, apperrors.ErrUserCancelled()
	}

	log.WithField("index", st.cursor).Info("item selected")
	return s.items[st.cursor].Value(), nil
}

// SelectOne runs a single-select engine once. A nil keymap means the default.
func SelectOne[T any](in Input, items []Item[T], keymap *Keymap[SingleAction[T]], opts ...Option) (T, error) {
	return NewSingle(items, keymap, opts...).Run(in)
}

// singleState is the cursor position and the transitions on it.
type singleState[T any] struct {
	items  []Item[T]
	cursor int
}

// apply performs a, reporting whether the loop ends and whether it was
// canceled. Moves clamp at both ends of the list.
func (s *singleState[T]) apply(a SingleAction[T]) (done, canceled bool) {
	switch a.kind {
	case SingleMoveDown:
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case SingleMoveUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case SingleSelect:
		return true, false
	case SingleCancel:
		return true, true
	case SingleCustom:
		if a.trigger != nil {
			a.trigger.OnTrigger(s.items[s.cursor].value)
		}
	}
	return false, false
}

func (s *singleState[T]) rows() []Row {
	rows := make([]Row, len(s.items))
	for i, item := range s.items {
		rows[i] = Row{Label: item.label}
		if i == s.cursor {
			rows[i].Emphasis = EmphasisCursor
		}
	}
	return rows
}
