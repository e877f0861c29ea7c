package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/dshills/mcpsync/internal/cache"
)

const defaultAPIURL = "https://api.github.com"

// Document is one application's configuration as fetched from a source: the
// raw JSON body plus its parsed value.
type Document struct {
	Raw   []byte
	Value any
}

// Object returns the document's top-level JSON object, or nil if the top
// level is not an object.
func (d Document) Object() map[string]any {
	obj, _ := d.Value.(map[string]any)
	return obj
}

// ResolverConfig carries the explicit dependencies of a Resolver.
type ResolverConfig struct {
	// APIURL is the Gist API base. Defaults to the public GitHub API.
	APIURL string
	// Token is an optional bearer token for Gist metadata requests.
	Token string
	// Cache holds downloaded bodies. A nil Cache disables caching.
	Cache *cache.Cache
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
}

// Resolver fetches configuration documents from direct URLs and Gists.
type Resolver struct {
	apiURL  string
	token   string
	cache   *cache.Cache
	httpCli *http.Client
}

// NewResolver creates a Resolver from an explicit configuration.
func NewResolver(cfg ResolverConfig) *Resolver {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	httpCli := cfg.HTTPClient
	if httpCli == nil {
		httpCli = &http.Client{Timeout: 60 * time.Second}
	}
	c := cfg.Cache
	if c == nil {
		c, _ = cache.New(false, "", 0)
	}
	return &Resolver{
		apiURL:  apiURL,
		token:   cfg.Token,
		cache:   c,
		httpCli: httpCli,
	}
}

// Resolve fetches the document described by src.
func (r *Resolver) Resolve(ctx context.Context, src Source) (Document, error) {
	switch src.Kind {
	case KindURL:
		return r.fetchURL(ctx, src.URL)
	case KindGist:
		return r.resolveGist(ctx, src.GistID, src.FileName)
	default:
		return Document{}, ErrNoSource
	}
}

// fetchURL returns the body at url, consulting the cache first. Fresh cached
// bodies are returned without any network access; stale or unparseable
// entries are treated as misses.
func (r *Resolver) fetchURL(ctx context.Context, url string) (Document, error) {
	if body, ok := r.cache.Get(url); ok {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			return Document{Raw: body, Value: v}, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("creating request: %w", err)
	}
	resp, err := r.httpCli.Do(req)
	if err != nil {
		return Document{}, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, &FetchError{URL: url, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Document{}, &FetchError{URL: url, Status: resp.StatusCode}
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return Document{}, &ParseError{Source: url, Err: err}
	}

	// Best-effort write; a failed cache write never fails the fetch.
	_ = r.cache.Put(url, body)

	return Document{Raw: body, Value: v}, nil
}

// gistListing mirrors the API's file map for one Gist.
type gistListing struct {
	Files map[string]struct {
		RawURL string `json:"raw_url"`
	} `json:"files"`
}

func (r *Resolver) resolveGist(ctx context.Context, id, fileName string) (Document, error) {
	url := fmt.Sprintf("%s/gists/%s", r.apiURL, id)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.httpCli.Do(req)
	if err != nil {
		return Document{}, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, &FetchError{URL: url, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Document{}, &FetchError{URL: url, Status: resp.StatusCode}
	}

	var listing gistListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return Document{}, &ParseError{Source: url, Err: err}
	}

	rawURL, err := selectFile(id, fileName, listing)
	if err != nil {
		return Document{}, err
	}
	return r.fetchURL(ctx, rawURL)
}

// selectFile applies the file selection policy: explicit name, else the only
// file, else the only .json file, else the choice is ambiguous.
func selectFile(id, fileName string, listing gistListing) (string, error) {
	if len(listing.Files) == 0 {
		return "", &NotFoundError{GistID: id}
	}

	names := make([]string, 0, len(listing.Files))
	for name := range listing.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	if fileName != "" {
		f, ok := listing.Files[fileName]
		if !ok {
			return "", &NotFoundError{GistID: id, FileName: fileName, Available: names}
		}
		return f.RawURL, nil
	}

	if len(names) == 1 {
		return listing.Files[names[0]].RawURL, nil
	}

	var jsonNames []string
	for _, name := range names {
		if path.Ext(name) == ".json" {
			jsonNames = append(jsonNames, name)
		}
	}
	if len(jsonNames) == 1 {
		return listing.Files[jsonNames[0]].RawURL, nil
	}

	candidates := jsonNames
	if len(candidates) == 0 {
		candidates = names
	}
	specs := make([]string, len(candidates))
	for i, name := range candidates {
		specs[i] = id + "/" + name
	}
	return "", &AmbiguousError{Candidates: specs}
}
