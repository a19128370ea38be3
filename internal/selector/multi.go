package selector

import (
	"io"

	"github.com/sirupsen/logrus"

	apperrors "github.com/TonnyWong1052/picker/internal/errors"
)

// Multi lets the user toggle any number of items and then finish.
type Multi[T any] struct {
	items  []Item[T]
	keymap *Keymap[MultiAction[T]]
	opts   options
}

// NewMulti returns a multi-select engine over items. A nil keymap means
// DefaultMultiKeymap.
func NewMulti[T any](items []Item[T], keymap *Keymap[MultiAction[T]], opts ...Option) *Multi[T] {
	if keymap == nil {
		keymap = DefaultMultiKeymap[T]()
	}
	return &Multi[T]{items: items, keymap: keymap, opts: newOptions(opts)}
}

// Bind assigns action to key, replacing any previous binding.
func (m *Multi[T]) Bind(key Key, action MultiAction[T]) {
	m.keymap.Insert(key, action)
}

// Unbind removes the binding for key, if any.
func (m *Multi[T]) Unbind(key Key) {
	m.keymap.Remove(key)
}

// Keymap returns the engine's keymap.
func (m *Multi[T]) Keymap() *Keymap[MultiAction[T]] {
	return m.keymap
}

// Run shows the list and blocks until the user finishes or cancels. On
// finish it returns the toggled values in list order; finishing with
// nothing toggled returns an empty slice and no error.
func (m *Multi[T]) Run(in Input) (values []T, err error) {
	if len(m.items) == 0 {
		return nil, apperrors.ErrEmptyItemList()
	}
	if err := m.opts.checkTerminal(in); err != nil {
		return nil, err
	}

	log := m.opts.logEntry("multi", len(m.items))
	renderer := m.opts.newRenderer(func() string { return multiHelp(m.keymap) })

	sess, err := openSession(in, renderer, m.opts.clearOnExit)
	if err != nil {
		log.WithError(err).Error("failed to open terminal session")
		return nil, err
	}
	defer func() {
		if cerr := sess.close(); cerr != nil && err == nil {
			log.WithError(cerr).Error("failed to restore terminal")
			values, err = nil, cerr
		}
	}()
	log.Debug("selection started")

	st := newMultiState(m.items)
	if err := sess.draw(st.rows()); err != nil {
		return nil, err
	}

	var done, canceled bool
	lerr := in.Listen(func(k Key) (bool, error) {
		a, ok := m.keymap.Lookup(k)
		if !ok {
			log.WithField("key", k).Debug("unbound key ignored")
			return false, sess.draw(st.rows())
		}

		done, canceled = st.apply(a)
		log.WithFields(logrus.Fields{
			"key":      k,
			"action":   a.Kind().String(),
			"cursor":   st.cursor,
			"selected": len(st.selected),
		}).Debug("key dispatched")
		if done {
			return true, nil
		}
		return false, sess.draw(st.rows())
	})
	if lerr != nil {
		err = asIOFailure(lerr)
		log.WithError(err).Error("selection aborted")
		return nil, err
	}
	if !done {
		return nil, apperrors.ErrTerminalIO("read", io.ErrUnexpectedEOF)
	}
	if canceled {
		log.Info("selection canceled")
		return nil, apperrors.ErrUserCancelled()
	}

	values = st.values()
	log.WithField("selected", len(values)).Info("items selected")
	return values, nil
}

// SelectMany runs a multi-select engine once. A nil keymap means the default.
func SelectMany[T any](in Input, items []Item[T], keymap *Keymap[MultiAction[T]], opts ...Option) ([]T, error) {
	return NewMulti(items, keymap, opts...).Run(in)
}

// multiState is the cursor, the set of toggled indices and the transitions
// on them.
type multiState[T any] struct {
	items    []Item[T]
	cursor   int
	selected map[int]struct{}
}

func newMultiState[T any](items []Item[T]) *multiState[T] {
	return &multiState[T]{items: items, selected: make(map[int]struct{})}
}

func (s *multiState[T]) apply(a MultiAction[T]) (done, canceled bool) {
	switch a.kind {
	case MultiMoveDown:
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case MultiMoveUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case MultiToggle:
		if _, ok := s.selected[s.cursor]; ok {
			delete(s.selected, s.cursor)
		} else {
			s.selected[s.cursor] = struct{}{}
		}
	case MultiFinish:
		return true, false
	case MultiCancel:
		return true, true
	case MultiCustom:
		if a.trigger != nil {
			a.trigger.OnTrigger(s.values())
		}
	}
	return false, false
}

// values snapshots the selected values in list order.
func (s *multiState[T]) values() []T {
	out := make([]T, 0, len(s.selected))
	for i, item := range s.items {
		if _, ok := s.selected[i]; ok {
			out = append(out, item.value)
		}
	}
	return out
}

func (s *multiState[T]) rows() []Row {
	rows := make([]Row, len(s.items))
	for i, item := range s.items {
		_, checked := s.selected[i]
		rows[i] = Row{Label: item.label, Checkable: true, Checked: checked}
		switch {
		case i == s.cursor:
			rows[i].Emphasis = EmphasisCursor
		case checked:
			rows[i].Emphasis = EmphasisSelected
		}
	}
	return rows
}
