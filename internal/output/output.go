// Package output renders pull and push results as text or JSON.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/mcpsync/internal/gist"
)

// Result describes one completed pull or push operation.
type Result struct {
	Action      string          `json:"action"`
	Source      string          `json:"source,omitempty"`
	Destination string          `json:"destination,omitempty"`
	Merged      bool            `json:"merged,omitempty"`
	DryRun      bool            `json:"dryRun,omitempty"`
	Content     string          `json:"content,omitempty"`
	Gist        *gist.Reference `json:"gist,omitempty"`
}

// Writer writes a result in a specific format.
type Writer interface {
	Write(w io.Writer, res *Result) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResult writes the result to stdout in the specified format.
func WriteResult(res *Result, format string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	return writer.Write(os.Stdout, res)
}
