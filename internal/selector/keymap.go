package selector

import "sort"

// Keymap maps key presses to actions. A key has at most one action; binding
// it again replaces the previous action. Unbound keys are ignored by the
// engines.
type Keymap[A any] struct {
	bindings map[Key]A
}

// NewKeymap returns an empty keymap.
func NewKeymap[A any]() *Keymap[A] {
	return &Keymap[A]{bindings: make(map[Key]A)}
}

// Lookup returns the action bound to key.
func (m *Keymap[A]) Lookup(key Key) (A, bool) {
	a, ok := m.bindings[key]
	return a, ok
}

// Insert binds key to action, replacing any existing binding.
func (m *Keymap[A]) Insert(key Key, action A) {
	if m.bindings == nil {
		m.bindings = make(map[Key]A)
	}
	m.bindings[key] = action
}

// Remove unbinds key. Removing an unbound key does nothing.
func (m *Keymap[A]) Remove(key Key) {
	delete(m.bindings, key)
}

// Len returns the number of bound keys.
func (m *Keymap[A]) Len() int {
	return len(m.bindings)
}

// Keys returns the bound keys in sorted order.
func (m *Keymap[A]) Keys() []Key {
	out := make([]Key, 0, len(m.bindings))
	for k := range m.bindings {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultSingleKeymap returns the bindings for single selection:
// ↑/k and ↓/j move, enter selects, ctrl+c cancels.
func DefaultSingleKeymap[T any]() *Keymap[SingleAction[T]] {
	m := NewKeymap[SingleAction[T]]()
	m.Insert(KeyUp, NewSingleAction[T](SingleMoveUp))
	m.Insert(KeyDown, NewSingleAction[T](SingleMoveDown))
	m.Insert("k", NewSingleAction[T](SingleMoveUp))
	m.Insert("j", NewSingleAction[T](SingleMoveDown))
	m.Insert(KeyEnter, NewSingleAction[T](SingleSelect))
	m.Insert(KeyCtrlC, NewSingleAction[T](SingleCancel))
	return m
}

// DefaultMultiKeymap returns the bindings for multi selection:
// ↑/k and ↓/j move, space toggles, enter finishes, ctrl+c cancels.
func DefaultMultiKeymap[T any]() *Keymap[MultiAction[T]] {
	m := NewKeymap[MultiAction[T]]()
	m.Insert(KeyUp, NewMultiAction[T](MultiMoveUp))
	m.Insert(KeyDown, NewMultiAction[T](MultiMoveDown))
	m.Insert("k", NewMultiAction[T](MultiMoveUp))
	m.Insert("j", NewMultiAction[T](MultiMoveDown))
	m.Insert(KeySpace, NewMultiAction[T](MultiToggle))
	m.Insert(KeyEnter, NewMultiAction[T](MultiFinish))
	m.Insert(KeyCtrlC, NewMultiAction[T](MultiCancel))
	return m
}
