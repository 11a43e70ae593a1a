package ports

// Watcher monitors input files and reports when one of them changes.
// The adapter (fsnotify) debounces bursts of events (editors and copy tools
// often write a file in several chunks). Only one Watch call should be active
// at a time.
type Watcher interface {
	// Watch starts monitoring the file at path. onChange is called with the
	// absolute path after each debounced write, create or rename of that file.
	// The callback may be invoked from any goroutine. Returns an error if the
	// containing directory doesn't exist or permissions are insufficient.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
