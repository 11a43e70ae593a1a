// Package bbolt implements the ports.LexiconCache interface using bbolt (embedded B+ tree).
// Every cache key gets its own bucket under the top-level "lexicons" bucket, holding
// the source file fingerprint and the binary-encoded entries. Writes are
// transactional — a crash mid-write cannot corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/ngram/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketLexicons = []byte("lexicons")
	keyFingerprint = []byte("fingerprint")
	keyEntries     = []byte("entries")
)

// Store implements ports.LexiconCache backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.LexiconCache = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveLexicon stores entries and the fingerprint of their source under key.
func (s *Store) SaveLexicon(key string, fp ports.Fingerprint, entries []ports.Entry) error {
	fpJSON, err := json.Marshal(fp)
	if err != nil {
		return fmt.Errorf("marshal fingerprint: %w", err)
	}
	data, err := encodeEntries(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketLexicons)
		if err != nil {
			return err
		}
		lb, err := root.CreateBucketIfNotExists([]byte(key))
		if err != nil {
			return err
		}
		if err := lb.Put(keyFingerprint, fpJSON); err != nil {
			return err
		}
		return lb.Put(keyEntries, data)
	})
}

// LoadLexicon retrieves the entries stored under key.
// Returns nil, nil if nothing is stored or the stored fingerprint is stale.
func (s *Store) LoadLexicon(key string, fp ports.Fingerprint) ([]ports.Entry, error) {
	var fpJSON, data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketLexicons)
		if root == nil {
			return nil
		}
		lb := root.Bucket([]byte(key))
		if lb == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := lb.Get(keyFingerprint); v != nil {
			fpJSON = make([]byte, len(v))
			copy(fpJSON, v)
		}
		if v := lb.Get(keyEntries); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if fpJSON == nil || data == nil {
		return nil, nil
	}

	var stored ports.Fingerprint
	if err := json.Unmarshal(fpJSON, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal fingerprint: %w", err)
	}
	if stored != fp {
		return nil, nil
	}

	entries, err := decodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

// DeleteLexicon removes the entries stored under key.
// Idempotent: deleting a missing key is not an error.
func (s *Store) DeleteLexicon(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketLexicons)
		if root == nil {
			return nil
		}
		if err := root.DeleteBucket([]byte(key)); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}
