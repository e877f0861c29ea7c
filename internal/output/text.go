package output

import (
	"fmt"
	"io"
)

// TextWriter outputs a human-readable summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res *Result) error {
	ew := &errWriter{w: w}

	switch res.Action {
	case "pull":
		if res.DryRun {
			ew.printf("Would write %s (from %s)\n", res.Destination, res.Source)
			if res.Content != "" {
				ew.println(res.Content)
			}
			break
		}
		verb := "Wrote"
		if res.Merged {
			verb = "Merged into"
		}
		ew.printf("%s %s (from %s)\n", verb, res.Destination, res.Source)
	case "push":
		ew.printf("Published %s\n", res.Source)
		if res.Gist != nil {
			ew.printf("  id:   %s\n", res.Gist.ID)
			if res.Gist.URL != "" {
				ew.printf("  url:  %s\n", res.Gist.URL)
			}
			if res.Gist.ViewCommand != "" {
				ew.printf("  view: %s\n", res.Gist.ViewCommand)
			}
		}
	default:
		ew.printf("%s: done\n", res.Action)
	}

	return ew.err
}

// errWriter accumulates the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}
