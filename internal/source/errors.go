package source

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrNoSource is returned when neither a URL nor a gist id is supplied.
	ErrNoSource = zerr.New("no source specified: provide a direct URL or a gist id")

	// ErrAmbiguousFlags is returned when both a URL and a gist id are supplied.
	ErrAmbiguousFlags = zerr.New("specify either a direct URL or a gist id, not both")
)

// FetchError reports a network or non-success HTTP response while fetching.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports an invalid JSON body from a source.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError reports an empty Gist or a named Gist file that is absent.
type NotFoundError struct {
	GistID    string
	FileName  string
	Available []string
}

func (e *NotFoundError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("gist %s has no files", e.GistID)
	}
	return fmt.Sprintf("gist %s has no file %q (available: %s)",
		e.GistID, e.FileName, strings.Join(e.Available, ", "))
}

// AmbiguousError reports a Gist with several JSON candidates; the caller must
// retry with one of the listed id/filename strings.
type AmbiguousError struct {
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("gist has multiple JSON files, specify one of: %s",
		strings.Join(e.Candidates, ", "))
}
