package source

import "strings"

// Kind discriminates the source variants.
type Kind int

const (
	// KindURL is a direct download URL.
	KindURL Kind = iota + 1
	// KindGist is a Gist id with an optional filename.
	KindGist
)

// Source is a tagged descriptor of where a configuration document lives.
type Source struct {
	Kind     Kind
	URL      string // KindURL
	GistID   string // KindGist
	FileName string // KindGist, optional
}

// String returns the user-facing form of the source.
func (s Source) String() string {
	switch s.Kind {
	case KindURL:
		return s.URL
	case KindGist:
		if s.FileName != "" {
			return s.GistID + "/" + s.FileName
		}
		return s.GistID
	default:
		return ""
	}
}

// FromURL builds a direct-URL source.
func FromURL(url string) Source {
	return Source{Kind: KindURL, URL: url}
}

// ParseGist parses a gist spec of the form "id" or "id/filename".
func ParseGist(spec string) (Source, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Source{}, ErrNoSource
	}
	id, name, _ := strings.Cut(spec, "/")
	if id == "" {
		return Source{}, ErrNoSource
	}
	return Source{Kind: KindGist, GistID: id, FileName: name}, nil
}

// FromFlags builds a Source from the mutually exclusive --url and --gist
// inputs. Exactly one must be non-empty.
func FromFlags(url, gist string) (Source, error) {
	switch {
	case url != "" && gist != "":
		return Source{}, ErrAmbiguousFlags
	case url != "":
		return FromURL(url), nil
	case gist != "":
		return ParseGist(gist)
	default:
		return Source{}, ErrNoSource
	}
}
