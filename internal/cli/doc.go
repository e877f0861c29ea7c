// Package cli wires together the Cobra command tree for the mcpsync binary.
//
// It defines the root command and all subcommands (pull, push, config, cache,
// version), binds flags, reads configuration, drives the interactive prompt
// when no source is given, and maps typed errors to exit codes.
package cli
