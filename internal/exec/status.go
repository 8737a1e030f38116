package exec

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status represents the outcome of one item in a run.
type Status int

const (
	// StatusOK means the process exited with status zero.
	StatusOK Status = iota
	// StatusFail means the process exited non-zero or could not be spawned.
	StatusFail
	// StatusWarn is reserved for non-fatal anomalies.
	StatusWarn
	// StatusSkip means the item's prerequisites were not met and the
	// process was never spawned.
	StatusSkip
)

// Token returns the literal status token printed in status lines. Scripts
// scan for these, so the text is part of the console contract.
func (s Status) Token() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFail:
		return "FAIL"
	case StatusWarn:
		return "WARN"
	case StatusSkip:
		return "SKIP"
	default:
		return "FAIL"
	}
}

// String returns the plain status token.
func (s Status) String() string {
	return s.Token()
}

// styles holds the conventional status colors: green OK, red FAIL,
// yellow WARN, dark-yellow SKIP (ANSI-256 10/9/11/3).
type styles struct {
	ok   lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
	skip lipgloss.Style
}

// newStyles binds the status styles to the output writer, so that output
// to a pipe or file stays plain text.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		ok:   r.NewStyle().Foreground(lipgloss.Color("10")),
		fail: r.NewStyle().Foreground(lipgloss.Color("9")),
		warn: r.NewStyle().Foreground(lipgloss.Color("11")),
		skip: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// render returns the status token styled for the bound writer.
func (st styles) render(s Status) string {
	switch s {
	case StatusOK:
		return st.ok.Render(s.Token())
	case StatusFail:
		return st.fail.Render(s.Token())
	case StatusWarn:
		return st.warn.Render(s.Token())
	case StatusSkip:
		return st.skip.Render(s.Token())
	default:
		return st.fail.Render(s.Token())
	}
}
