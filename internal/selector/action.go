package selector

import "fmt"

// SingleKind enumerates what a key does in single selection.
type SingleKind int

const (
	SingleMoveUp SingleKind = iota
	SingleMoveDown
	SingleSelect
	SingleCancel
	SingleCustom
)

var singleKindNames = map[SingleKind]string{
	SingleMoveUp:   "up",
	SingleMoveDown: "down",
	SingleSelect:   "select",
	SingleCancel:   "cancel",
	SingleCustom:   "custom",
}

func (k SingleKind) String() string {
	if n, ok := singleKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("SingleKind(%d)", int(k))
}

// ParseSingleKind resolves a built-in action name. Custom actions carry code
// and cannot be named in configuration.
func ParseSingleKind(name string) (SingleKind, error) {
	for k, n := range singleKindNames {
		if n == name && k != SingleCustom {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown single-select action %q", name)
}

// SingleTrigger is a side effect run against the value under the cursor.
type SingleTrigger[T any] interface {
	OnTrigger(value T)
}

// SingleTriggerFunc adapts a function to SingleTrigger.
type SingleTriggerFunc[T any] func(value T)

// OnTrigger calls f(value).
func (f SingleTriggerFunc[T]) OnTrigger(value T) { f(value) }

// SingleAction is what a key does while selecting one item.
type SingleAction[T any] struct {
	kind    SingleKind
	trigger SingleTrigger[T]
	help    string
}

// NewSingleAction returns a built-in action. Passing SingleCustom yields a
// custom action with no effect; use SingleFunc or SingleTriggerAction instead.
func NewSingleAction[T any](kind SingleKind) SingleAction[T] {
	return SingleAction[T]{kind: kind}
}

// SingleFunc returns a custom action calling fn with the current value.
func SingleFunc[T any](fn func(value T)) SingleAction[T] {
	return SingleAction[T]{kind: SingleCustom, trigger: SingleTriggerFunc[T](fn)}
}

// SingleTriggerAction returns a custom action backed by t.
func SingleTriggerAction[T any](t SingleTrigger[T]) SingleAction[T] {
	return SingleAction[T]{kind: SingleCustom, trigger: t}
}

// Kind reports which action this is.
func (a SingleAction[T]) Kind() SingleKind { return a.kind }

// WithHelp sets the description shown in the help line.
func (a SingleAction[T]) WithHelp(desc string) SingleAction[T] {
	a.help = desc
	return a
}

// Help returns the help line description.
func (a SingleAction[T]) Help() string {
	if a.help != "" {
		return a.help
	}
	return a.kind.String()
}

// MultiKind enumerates what a key does in multi selection.
type MultiKind int

const (
	MultiMoveUp MultiKind = iota
	MultiMoveDown
	MultiToggle
	MultiCancel
	MultiFinish
	MultiCustom
)

var multiKindNames = map[MultiKind]string{
	MultiMoveUp:   "up",
	MultiMoveDown: "down",
	MultiToggle:   "toggle",
	MultiCancel:   "cancel",
	MultiFinish:   "finish",
	MultiCustom:   "custom",
}

func (k MultiKind) String() string {
	if n, ok := multiKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("MultiKind(%d)", int(k))
}

// ParseMultiKind resolves a built-in action name.
func ParseMultiKind(name string) (MultiKind, error) {
	for k, n := range multiKindNames {
		if n == name && k != MultiCustom {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown multi-select action %q", name)
}

// MultiTrigger is a side effect run against the selected values, in list order.
type MultiTrigger[T any] interface {
	OnTrigger(values []T)
}

// MultiTriggerFunc adapts a function to MultiTrigger.
type MultiTriggerFunc[T any] func(values []T)

// OnTrigger calls f(values).
func (f MultiTriggerFunc[T]) OnTrigger(values []T) { f(values) }

// MultiAction is what a key does while selecting many items.
type MultiAction[T any] struct {
	kind    MultiKind
	trigger MultiTrigger[T]
	help    string
}

// NewMultiAction returns a built-in action.
func NewMultiAction[T any](kind MultiKind) MultiAction[T] {
	return MultiAction[T]{kind: kind}
}

// MultiFunc returns a custom action calling fn with the selected values.
func MultiFunc[T any](fn func(values []T)) MultiAction[T] {
	return MultiAction[T]{kind: MultiCustom, trigger: MultiTriggerFunc[T](fn)}
}

// MultiTriggerAction returns a custom action backed by t.
func MultiTriggerAction[T any](t MultiTrigger[T]) MultiAction[T] {
	return MultiAction[T]{kind: MultiCustom, trigger: t}
}

// Kind reports which action this is.
func (a MultiAction[T]) Kind() MultiKind { return a.kind }

// WithHelp sets the description shown in the help line.
func (a MultiAction[T]) WithHelp(desc string) MultiAction[T] {
	a.help = desc
	return a
}

// Help returns the help line description.
func (a MultiAction[T]) Help() string {
	if a.help != "" {
		return a.help
	}
	return a.kind.String()
}
