package gist

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CLIPublisher writes Gists by shelling out to an authenticated gh CLI.
type CLIPublisher struct {
	gh string
}

// Publish writes content to a temporary file and invokes gh to create or
// edit the Gist. The view URL is best-effort: gh prints the full URL on
// create, and on edit it is reconstructed from the authenticated username
// when one can be determined.
func (p *CLIPublisher) Publish(ctx context.Context, content []byte, fileName string, opts Options) (Reference, error) {
	dir, err := os.MkdirTemp("", "mcpsync-gist-")
	if err != nil {
		return Reference{}, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	// gh names the Gist file after the local file, so the temp file carries
	// the requested name.
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return Reference{}, fmt.Errorf("writing temp file: %w", err)
	}

	if opts.GistID != "" {
		return p.edit(ctx, opts.GistID, path)
	}
	return p.create(ctx, path, opts.Private)
}

func (p *CLIPublisher) create(ctx context.Context, path string, private bool) (Reference, error) {
	args := []string{"gist", "create"}
	if !private {
		args = append(args, "--public")
	}
	args = append(args, path)

	out, err := exec.CommandContext(ctx, p.gh, args...).CombinedOutput()
	if err != nil {
		return Reference{}, &PublishError{Detail: fmt.Sprintf("gh gist create: %v: %s", err, strings.TrimSpace(string(out)))}
	}

	url, id, ok := parseGistURL(string(out))
	if !ok {
		return Reference{}, &PublishError{Detail: fmt.Sprintf("cannot find gist id in gh output: %s", strings.TrimSpace(string(out)))}
	}
	return Reference{
		ID:          id,
		URL:         url,
		ViewCommand: "gh gist view " + id,
	}, nil
}

func (p *CLIPublisher) edit(ctx context.Context, id, path string) (Reference, error) {
	out, err := exec.CommandContext(ctx, p.gh, "gist", "edit", id, "--add", path).CombinedOutput()
	if err != nil {
		return Reference{}, &PublishError{Detail: fmt.Sprintf("gh gist edit: %v: %s", err, strings.TrimSpace(string(out)))}
	}

	ref := Reference{ID: id, ViewCommand: "gh gist view " + id}
	if login := p.login(ctx); login != "" {
		ref.URL = "https://gist.github.com/" + login + "/" + id
	}
	return ref, nil
}

// login reports the authenticated gh username, or "" when it cannot be
// determined.
func (p *CLIPublisher) login(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, p.gh, "api", "user", "-q", ".login").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// parseGistURL extracts the gist URL and id from gh output, which prints the
// created Gist's URL as its final line.
func parseGistURL(out string) (url, id string, ok bool) {
	for _, field := range strings.Fields(out) {
		if !strings.Contains(field, "gist.github.com/") {
			continue
		}
		trimmed := strings.TrimRight(field, "/.")
		segs := strings.Split(trimmed, "/")
		last := segs[len(segs)-1]
		if last == "" {
			continue
		}
		url, id, ok = trimmed, last, true
	}
	return url, id, ok
}
