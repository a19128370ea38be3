package errors

import (
	"fmt"
	"io"
	"sort"

	"github.com/pterm/pterm"
)

// Process exit statuses.
const (
	ExitSuccess      = 0
	ExitGenericError = 1
	ExitUserCancel   = 130
)

// ConsoleErrorHandler prints errors for a person at a terminal.
type ConsoleErrorHandler struct {
	w         io.Writer
	debugMode bool
}

// NewConsoleErrorHandler writes to w; debug mode adds codes, causes and context.
func NewConsoleErrorHandler(w io.Writer, debugMode bool) *ConsoleErrorHandler {
	return &ConsoleErrorHandler{w: w, debugMode: debugMode}
}

// Handle prints err. A nil error prints nothing.
func (h *ConsoleErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	pe, ok := GetPickerError(err)
	if !ok {
		fmt.Fprint(h.w, pterm.Error.Sprintln(err.Error()))
		return
	}

	switch pe.Code {
	case ErrUserCancel:
		fmt.Fprint(h.w, pterm.Warning.Sprintln("Canceled"))
		return
	case ErrEmptyList:
		fmt.Fprint(h.w, pterm.Error.Sprintln("Nothing to pick from: the item list is empty"))
		fmt.Fprint(h.w, pterm.Info.Sprintln("Pass items as arguments or with --from-file"))
	case ErrNotATerminal:
		fmt.Fprint(h.w, pterm.Error.Sprintln("picker needs an interactive terminal on stdin and stderr"))
	case ErrConfigLoad, ErrConfigValidation:
		fmt.Fprint(h.w, pterm.Error.Sprintln(h.formatUserMessage(pe)))
		fmt.Fprint(h.w, pterm.Info.Sprintln("Run 'picker config path' to find the file and fix or remove it"))
	default:
		fmt.Fprint(h.w, pterm.Error.Sprintln(h.formatUserMessage(pe)))
	}

	if h.debugMode {
		fmt.Fprint(h.w, pterm.FgGray.Sprintfln("code: %s", pe.Code))
		if len(pe.Context) > 0 {
			keys := make([]string, 0, len(pe.Context))
			for k := range pe.Context {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprint(h.w, pterm.FgGray.Sprintfln("%s: %v", k, pe.Context[k]))
			}
		}
		if pe.Stack != "" {
			fmt.Fprint(h.w, pterm.FgGray.Sprintfln("stack:\n%s", pe.Stack))
		}
	}
}

// formatUserMessage is the message plus its cause.
func (h *ConsoleErrorHandler) formatUserMessage(pe *PickerError) string {
	message := pe.Message
	if pe.Cause != nil {
		message = fmt.Sprintf("%s: %v", message, pe.Cause)
	}
	return message
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsCanceled(err):
		return ExitUserCancel
	}
	return ExitGenericError
}
