package cmd

import (
	"strings"

	"github.com/corey/ngram/internal/app"
)

// isCacheLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns the string "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isCacheLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// diagnoseCacheLock returns actionable guidance when the lexicon cache is
// held by another process, usually an ngram --watch run on the same file.
func diagnoseCacheLock(cachePath string) string {
	if cachePath == app.AutoCachePath {
		cachePath = app.DefaultCachePath()
	}
	return "lexicon cache " + cachePath + " is locked by another process\n" +
		"  → a running 'ngram --watch' holds it until stopped\n" +
		"  → find the process:  ps aux | grep 'ngram'\n" +
		"  → or run without the cache (drop --cache) or with another --cache file"
}
