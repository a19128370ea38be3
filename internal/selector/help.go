package selector

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	order int
	desc  string
	keys  []Key
}

// helpLine renders a one-line summary such as "↑/k up • ↓/j down • enter select".
// Keys sharing a description are merged; entries are sorted by order, then
// description.
func helpLine(entries []helpEntry) string {
	merged := make(map[string]*helpEntry)
	var list []*helpEntry
	for _, e := range entries {
		if m, ok := merged[e.desc]; ok {
			m.keys = append(m.keys, e.keys...)
			if e.order < m.order {
				m.order = e.order
			}
			continue
		}
		c := e
		merged[e.desc] = &c
		list = append(list, &c)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].order != list[j].order {
			return list[i].order < list[j].order
		}
		return list[i].desc < list[j].desc
	})

	bindings := make([]key.Binding, 0, len(list))
	for _, e := range list {
		sort.Slice(e.keys, func(i, j int) bool {
			// Named keys (arrows, enter) before letters.
			li, lj := len(e.keys[i]) > 1, len(e.keys[j]) > 1
			if li != lj {
				return li
			}
			return e.keys[i] < e.keys[j]
		})
		names := make([]string, 0, len(e.keys))
		display := make([]string, 0, len(e.keys))
		for _, k := range e.keys {
			names = append(names, string(k))
			display = append(display, k.Display())
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(names...),
			key.WithHelp(strings.Join(display, "/"), e.desc),
		))
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Bold(true)
	return h.ShortHelpView(bindings)
}

func singleHelp[T any](m *Keymap[SingleAction[T]]) string {
	entries := make([]helpEntry, 0, m.Len())
	for _, k := range m.Keys() {
		a, _ := m.Lookup(k)
		entries = append(entries, helpEntry{order: int(a.Kind()), desc: a.Help(), keys: []Key{k}})
	}
	return helpLine(entries)
}

func multiHelp[T any](m *Keymap[MultiAction[T]]) string {
	entries := make([]helpEntry, 0, m.Len())
	for _, k := range m.Keys() {
		a, _ := m.Lookup(k)
		entries = append(entries, helpEntry{order: int(a.Kind()), desc: a.Help(), keys: []Key{k}})
	}
	return helpLine(entries)
}
