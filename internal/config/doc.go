// Package config loads and persists the mcpsync configuration.
//
// Effective configuration is built by layering: defaults <- config file <-
// environment <- CLI flag overrides. The Gist credential is read from
// GITHUB_TOKEN and is never written to the config file.
package config
