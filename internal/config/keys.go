package config

import (
	"fmt"
	"sort"

	apperrors "github.com/TonnyWong1052/picker/internal/errors"
	"github.com/TonnyWong1052/picker/internal/selector"
)

// SingleActionNames lists the action names accepted in single_keys.
func SingleActionNames() []string {
	return []string{
		selector.SingleMoveUp.String(),
		selector.SingleMoveDown.String(),
		selector.SingleSelect.String(),
		selector.SingleCancel.String(),
	}
}

// MultiActionNames lists the action names accepted in multi_keys.
func MultiActionNames() []string {
	return []string{
		selector.MultiMoveUp.String(),
		selector.MultiMoveDown.String(),
		selector.MultiToggle.String(),
		selector.MultiFinish.String(),
		selector.MultiCancel.String(),
	}
}

// ApplySingle applies the single_keys section to km in key order.
func ApplySingle[T any](km *selector.Keymap[selector.SingleAction[T]], bindings map[string]string) error {
	for _, name := range sortedKeys(bindings) {
		k, err := selector.ParseKey(name)
		if err != nil {
			return fmt.Errorf("single_keys: %w", err)
		}
		action := bindings[name]
		if action == ActionNone {
			km.Remove(k)
			continue
		}
		kind, err := selector.ParseSingleKind(action)
		if err != nil {
			return fmt.Errorf("single_keys.%s: %w", name, err)
		}
		km.Insert(k, selector.NewSingleAction[T](kind))
	}
	return nil
}

// ApplyMulti applies the multi_keys section to km in key order.
func ApplyMulti[T any](km *selector.Keymap[selector.MultiAction[T]], bindings map[string]string) error {
	for _, name := range sortedKeys(bindings) {
		k, err := selector.ParseKey(name)
		if err != nil {
			return fmt.Errorf("multi_keys: %w", err)
		}
		action := bindings[name]
		if action == ActionNone {
			km.Remove(k)
			continue
		}
		kind, err := selector.ParseMultiKind(action)
		if err != nil {
			return fmt.Errorf("multi_keys.%s: %w", name, err)
		}
		km.Insert(k, selector.NewMultiAction[T](kind))
	}
	return nil
}

// Bind records a binding in the section for mode ("one" or "many") after
// checking that both the key and the action are valid.
func (c *Config) Bind(mode, key, action string) error {
	k, err := selector.ParseKey(key)
	if err != nil {
		return err
	}
	section, err := c.section(mode)
	if err != nil {
		return err
	}
	if action != ActionNone {
		if mode == ModeOne {
			_, err = selector.ParseSingleKind(action)
		} else {
			_, err = selector.ParseMultiKind(action)
		}
		if err != nil {
			return err
		}
	}
	(*section)[string(k)] = action
	return nil
}

// Unbind drops the configured binding for key so the default applies again.
// It reports whether there was one.
func (c *Config) Unbind(mode, key string) (bool, error) {
	section, err := c.section(mode)
	if err != nil {
		return false, err
	}
	// An entry written by hand may not parse; remove it as written.
	if _, ok := (*section)[key]; ok {
		delete(*section, key)
		return true, nil
	}
	k, err := selector.ParseKey(key)
	if err != nil {
		return false, err
	}
	if _, ok := (*section)[string(k)]; !ok {
		return false, nil
	}
	delete(*section, string(k))
	return true, nil
}

// Modes accepted by Bind and Unbind.
const (
	ModeOne  = "one"
	ModeMany = "many"
)

func (c *Config) section(mode string) (*map[string]string, error) {
	var section *map[string]string
	switch mode {
	case ModeOne:
		section = &c.SingleKeys
	case ModeMany:
		section = &c.MultiKeys
	default:
		return nil, apperrors.ErrConfigValidationFailed("mode", fmt.Sprintf("unknown mode %q (want %q or %q)", mode, ModeOne, ModeMany))
	}
	if *section == nil {
		*section = make(map[string]string)
	}
	return section, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
