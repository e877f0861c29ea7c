// Package source resolves a remote configuration source (a direct URL or a
// GitHub Gist) to a parsed JSON document.
//
// Gist sources are resolved in two steps: the Gist's file listing is fetched
// from the API, one file is selected (explicit name, else the only file, else
// the only .json file), and its raw-content URL is then downloaded through
// the same cached direct-URL path, so Gist bodies are cached exactly like
// direct downloads, keyed by the resolved raw URL.
package source
