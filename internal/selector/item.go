package selector

// Item is a label shown to the user paired with the value returned when the
// user picks it. Items are immutable once built.
type Item[T any] struct {
	label string
	value T
}

// NewItem builds an item that displays label and yields value.
func NewItem[T any](label string, value T) Item[T] {
	return Item[T]{label: label, value: value}
}

// ItemsFromStrings builds items whose value is the label itself.
func ItemsFromStrings(labels ...string) []Item[string] {
	items := make([]Item[string], 0, len(labels))
	for _, l := range labels {
		items = append(items, NewItem(l, l))
	}
	return items
}

// Label returns the displayed text.
func (i Item[T]) Label() string {
	return i.label
}

// Value returns a copy of the item's value.
func (i Item[T]) Value() T {
	return i.value
}
