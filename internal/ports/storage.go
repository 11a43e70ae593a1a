// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// LexiconCache stores validated lexicon entries so a later run over the
// same, unchanged input file can skip parsing and validation.
// Only input data is cached. Aggregated n-gram tables are never persisted.
//
// Crash safety: SaveLexicon must be transactional. A crash mid-write must
// not corrupt previously committed entries.
type LexiconCache interface {
	// SaveLexicon stores entries under key together with the fingerprint of
	// the file they were read from. Overwrites any prior value for key.
	SaveLexicon(key string, fp Fingerprint, entries []Entry) error

	// LoadLexicon returns the entries stored under key.
	// Returns nil, nil when nothing is stored or the stored fingerprint
	// differs from fp (the input file changed since it was cached).
	LoadLexicon(key string, fp Fingerprint) ([]Entry, error)

	// DeleteLexicon removes the entries stored under key.
	// Idempotent: deleting a missing key is not an error.
	DeleteLexicon(key string) error
}

// Fingerprint identifies one version of an input file.
type Fingerprint struct {
	Size    int64 `json:"size"`
	ModTime int64 `json:"mod_time"` // unix nanoseconds
}
