package selector

import (
	"io"
	"strings"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// Emphasis is how strongly a row is highlighted.
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisCursor
	EmphasisSelected
)

// Row is one line of the list as the engines want it drawn.
type Row struct {
	Label    string
	Emphasis Emphasis
	// Checkable rows belong to a multi-select list and show a checkbox.
	Checkable bool
	Checked   bool
}

// Renderer draws the list. Draw replaces whatever the previous Draw put on
// screen; Draw(nil) just erases it.
type Renderer interface {
	Draw(rows []Row) error
	SetCursorVisible(visible bool) error
}

// footerSetter is implemented by renderers that can show a help line.
type footerSetter interface {
	SetFooter(footer string)
}

// Styles controls how TerminalRenderer paints rows.
type Styles struct {
	Normal       *pterm.Style
	Cursor       *pterm.Style
	Selected     *pterm.Style
	CursorMarker string
	Checked      string
	Unchecked    string
}

// DefaultStyles paints the cursor row white on black and selected rows white
// on blue.
func DefaultStyles() Styles {
	return Styles{
		Normal:       pterm.NewStyle(),
		Cursor:       pterm.NewStyle(pterm.FgWhite, pterm.BgBlack),
		Selected:     pterm.NewStyle(pterm.FgWhite, pterm.BgBlue),
		CursorMarker: ">",
		Checked:      "x",
		Unchecked:    " ",
	}
}

// TerminalRenderer redraws the list in place using ANSI cursor movement.
type TerminalRenderer struct {
	out    *errWriter
	area   cursor.Area
	cursor *cursor.Cursor
	styles Styles
	footer string
}

// NewTerminalRenderer draws to w, usually os.Stderr so stdout stays free for
// the result.
func NewTerminalRenderer(w cursor.Writer, styles Styles) *TerminalRenderer {
	out := &errWriter{w: w}
	return &TerminalRenderer{
		out:    out,
		area:   cursor.NewArea().WithWriter(out),
		cursor: cursor.NewCursor().WithWriter(out),
		styles: styles,
	}
}

// SetFooter sets a line drawn below the list.
func (r *TerminalRenderer) SetFooter(footer string) {
	r.footer = footer
}

// Draw implements Renderer.
func (r *TerminalRenderer) Draw(rows []Row) error {
	if rows == nil {
		r.area.Update("")
		return r.out.take()
	}
	r.area.Update(r.Format(rows))
	return r.out.take()
}

// SetCursorVisible implements Renderer.
func (r *TerminalRenderer) SetCursorVisible(visible bool) error {
	if visible {
		r.cursor.Show()
	} else {
		r.cursor.Hide()
	}
	return r.out.take()
}

// Format renders rows to text. Lines end in \r\n because the terminal is in
// raw mode while the list is shown.
func (r *TerminalRenderer) Format(rows []Row) string {
	var b strings.Builder
	for _, row := range rows {
		marker := strings.Repeat(" ", len(r.styles.CursorMarker))
		if row.Emphasis == EmphasisCursor {
			marker = r.styles.CursorMarker
		}
		b.WriteString(marker)
		b.WriteString(" ")

		if row.Checkable {
			mark := r.styles.Unchecked
			if row.Checked {
				mark = r.styles.Checked
			}
			b.WriteString("[" + mark + "] ")
		}

		b.WriteString(r.style(row.Emphasis).Sprint(row.Label))
		b.WriteString("\r\n")
	}
	if r.footer != "" {
		b.WriteString("\r\n")
		b.WriteString(r.footer)
		b.WriteString("\r\n")
	}
	return b.String()
}

func (r *TerminalRenderer) style(e Emphasis) *pterm.Style {
	switch e {
	case EmphasisCursor:
		return r.styles.Cursor
	case EmphasisSelected:
		return r.styles.Selected
	}
	return r.styles.Normal
}

// errWriter remembers the first write error, since the cursor package
// discards them.
type errWriter struct {
	w   cursor.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	} else if n < len(p) {
		e.err = io.ErrShortWrite
	}
	return n, e.err
}

func (e *errWriter) Fd() uintptr {
	return e.w.Fd()
}

func (e *errWriter) take() error {
	err := e.err
	e.err = nil
	return err
}
