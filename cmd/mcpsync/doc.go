// Mcpsync copies MCP JSON configuration files between remote sources and the
// local config files of supported client applications.
//
// It fetches from a direct URL or a GitHub Gist (with a one-hour local
// download cache), optionally deep-merges into the existing local file, and
// can publish a local config back to a Gist via the API or the gh CLI.
//
// Usage:
//
//	mcpsync pull --gist abc123 --client claude      # fetch a gist into Claude Desktop
//	mcpsync pull --url https://x/cfg.json --merge   # merge a URL into the default client
//	mcpsync push --client cursor --private          # publish Cursor's config as a secret gist
//	mcpsync push --gist abc123                      # update an existing gist
//	mcpsync pull                                    # interactive prompt
//
// See https://github.com/dshills/mcpsync for full documentation.
package main
