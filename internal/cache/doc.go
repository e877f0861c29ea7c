// Package cache provides a file-based cache for downloaded configuration
// bodies.
//
// Entries are keyed by a SHA-256 hash of the source URL and store the raw
// JSON body verbatim. The file's modification time is the freshness clock: an
// entry older than the freshness window is treated as a miss and overwritten
// by the next fetch. Entries are never proactively evicted.
//
// The default cache directory is $XDG_CACHE_HOME/mcpsync (or the
// OS-appropriate equivalent). Concurrent invocations racing on the same key
// are last-write-wins; writes are whole-file replace.
package cache
