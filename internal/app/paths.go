package app

import (
	"os"
	"path/filepath"
)

// AutoCachePath is the --cache value that selects DefaultCachePath.
const AutoCachePath = "auto"

// DefaultCachePath returns the per-user lexicon cache file:
// $XDG_CACHE_HOME/ngram/lexicons.db (or the platform equivalent), falling
// back to the temp dir when no cache dir is known.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "ngram", "lexicons.db")
}

// ResolveCachePath expands AutoCachePath and creates the parent directory
// of the cache file. An empty path means caching is disabled and is
// returned unchanged.
func ResolveCachePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == AutoCachePath {
		path = DefaultCachePath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, nil
}
