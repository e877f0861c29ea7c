// Package gist publishes local configuration content to a GitHub Gist.
//
// Two interchangeable strategies satisfy the Publisher interface: a direct
// API client used when a token is configured, and a fallback that shells out
// to an authenticated gh CLI. NewPublisher picks one with a capability check
// performed once per invocation.
package gist

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const defaultAPIURL = "https://api.github.com"

// Reference identifies a published Gist: its id, a human-viewable URL, and a
// suggested command to view it. The URL may be partial when the acting
// identity is unknown (gh strategy without a resolvable username).
type Reference struct {
	ID          string `json:"id"`
	URL         string `json:"url,omitempty"`
	ViewCommand string `json:"viewCommand,omitempty"`
}

// Options controls a single publish call.
type Options struct {
	// GistID updates an existing Gist when set; empty creates a new one.
	GistID string
	// Private creates a secret Gist. Ignored on update.
	Private bool
}

// Publisher writes one named file's content to a remote Gist.
type Publisher interface {
	Publish(ctx context.Context, content []byte, fileName string, opts Options) (Reference, error)
}

// ErrNoPublisher is returned when neither a token nor the gh CLI is available.
var ErrNoPublisher = zerr.New("no gist credential or gh CLI available")

// PublishError reports a failed remote write or unusable helper output.
type PublishError struct {
	Status int
	Detail string
}

func (e *PublishError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("publishing gist: HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("publishing gist: %s", e.Detail)
}

// Config carries the explicit inputs to publisher selection.
type Config struct {
	// Token is a Gist API bearer token. When set, the API strategy is used.
	Token string
	// APIURL overrides the Gist API base (API strategy).
	APIURL string
	// HTTPClient overrides the default HTTP client (API strategy).
	HTTPClient *http.Client
}

// NewPublisher selects a publish strategy: the API client when a token is
// configured, else the gh CLI when present on PATH, else ErrNoPublisher.
// The check never touches the network.
func NewPublisher(cfg Config) (Publisher, error) {
	if cfg.Token != "" {
		apiURL := strings.TrimRight(cfg.APIURL, "/")
		if apiURL == "" {
			apiURL = defaultAPIURL
		}
		httpCli := cfg.HTTPClient
		if httpCli == nil {
			httpCli = &http.Client{Timeout: 60 * time.Second}
		}
		return &APIPublisher{token: cfg.Token, apiURL: apiURL, httpCli: httpCli}, nil
	}
	if gh, err := exec.LookPath("gh"); err == nil {
		return &CLIPublisher{gh: gh}, nil
	}
	return nil, ErrNoPublisher
}
