// Package selector implements interactive list selection in a terminal.
//
// Two engines share the same shape: Single returns one value, Multi returns
// the toggled values in list order. Each reads key presses from an Input,
// maps them through a Keymap to an action, and redraws the whole list
// through a Renderer after every key. Keys are handled strictly in arrival
// order: a custom action finishes before the next key is looked up, so a
// custom action bound to a key pressed before Cancel always runs and nothing
// pressed after Cancel does.
//
// The loop is synchronous and owns the terminal until it returns.
package selector
