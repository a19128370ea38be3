package selector

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	apperrors "github.com/TonnyWong1052/picker/internal/errors"
	"github.com/TonnyWong1052/picker/internal/logging"
)

// Sentinels for errors.Is. Errors returned by the engines match exactly one.
var (
	ErrEmptyList    error = &apperrors.PickerError{Code: apperrors.ErrEmptyList}
	ErrNotATerminal error = &apperrors.PickerError{Code: apperrors.ErrNotATerminal}
	ErrCanceled     error = &apperrors.PickerError{Code: apperrors.ErrUserCancel}
	ErrIOFailure    error = &apperrors.PickerError{Code: apperrors.ErrIOFailure}
)

// Option configures an engine.
type Option func(*options)

type options struct {
	renderer    Renderer
	styles      Styles
	logger      *logging.Logger
	showHelp    bool
	clearOnExit bool
}

func newOptions(opts []Option) options {
	o := options{styles: DefaultStyles()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRenderer draws through r instead of the terminal renderer.
func WithRenderer(r Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithStyles sets the styles of the default terminal renderer.
func WithStyles(s Styles) Option {
	return func(o *options) { o.styles = s }
}

// WithLogger sets the logger; the default is the "selector" component logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHelp shows a key binding summary under the list.
func WithHelp(show bool) Option {
	return func(o *options) { o.showHelp = show }
}

// WithClearOnExit erases the list when the selection ends.
func WithClearOnExit(clear bool) Option {
	return func(o *options) { o.clearOnExit = clear }
}

// stderrIsTerminal reports whether the default renderer draws to a terminal.
var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// checkTerminal requires the key source to be a terminal, and stderr as well
// when the list is drawn there.
func (o options) checkTerminal(in Input) error {
	if !in.IsTerminal() {
		return apperrors.ErrNotInteractive().WithContext("stream", "input")
	}
	if o.renderer == nil && !stderrIsTerminal() {
		return apperrors.ErrNotInteractive().WithContext("stream", "stderr")
	}
	return nil
}

// newRenderer returns the configured renderer, building the terminal one on
// stderr when none was given. help is only computed when it will be shown.
func (o options) newRenderer(help func() string) Renderer {
	r := o.renderer
	if r == nil {
		r = NewTerminalRenderer(os.Stderr, o.styles)
	}
	if fs, ok := r.(footerSetter); ok && o.showHelp {
		fs.SetFooter(help())
	}
	return r
}

func (o options) logEntry(mode string, items int) *logrus.Entry {
	l := o.logger
	if l == nil {
		l = logging.WithComponent("selector")
	}
	return l.WithFields(logrus.Fields{
		"session": uuid.NewString(),
		"mode":    mode,
		"items":   items,
	})
}
