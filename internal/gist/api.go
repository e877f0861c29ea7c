package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIPublisher writes Gists through the REST API with a bearer token.
type APIPublisher struct {
	token   string
	apiURL  string
	httpCli *http.Client
}

type gistFile struct {
	Content string `json:"content"`
}

type gistRequest struct {
	Files  map[string]gistFile `json:"files"`
	Public bool                `json:"public"`
}

type gistResponse struct {
	ID      string `json:"id"`
	HTMLURL string `json:"html_url"`
}

// Publish creates or updates a Gist holding one file with the given content.
func (p *APIPublisher) Publish(ctx context.Context, content []byte, fileName string, opts Options) (Reference, error) {
	payload, err := json.Marshal(gistRequest{
		Files:  map[string]gistFile{fileName: {Content: string(content)}},
		Public: !opts.Private,
	})
	if err != nil {
		return Reference{}, fmt.Errorf("marshaling gist request: %w", err)
	}

	method, url := "POST", p.apiURL+"/gists"
	if opts.GistID != "" {
		method, url = "PATCH", p.apiURL+"/gists/"+opts.GistID
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return Reference{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpCli.Do(req)
	if err != nil {
		return Reference{}, &PublishError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Reference{}, &PublishError{Detail: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Reference{}, &PublishError{Status: resp.StatusCode, Detail: string(body)}
	}

	var gr gistResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return Reference{}, &PublishError{Detail: fmt.Sprintf("parsing response: %v", err)}
	}
	return Reference{
		ID:          gr.ID,
		URL:         gr.HTMLURL,
		ViewCommand: "gh gist view " + gr.ID,
	}, nil
}
