package bbolt

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/corey/ngram/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Lexicon cache: save/load entries keyed by source path, invalidated when
// the source file's fingerprint changes.
// =============================================================================

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func makeTestEntries() []ports.Entry {
	return []ports.Entry{
		{Word: "the", Weight: 29449.18},
		{Word: "quick", Weight: 54.5},
		{Word: "happy", Weight: 0.000123},
		{Word: "snow", Weight: 0},
	}
}

var testFingerprint = ports.Fingerprint{Size: 4096, ModTime: 1700000000000000000}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	store, _ := newTestStore(t)

	original := makeTestEntries()
	require.NoError(t, store.SaveLexicon("subtlex:/data/words.csv:SUBTLWF", testFingerprint, original))

	loaded, err := store.LoadLexicon("subtlex:/data/words.csv:SUBTLWF", testFingerprint)
	require.NoError(t, err)
	assert.Equal(t, original, loaded, "entries and their order must survive the roundtrip")
}

func TestStore_EmptyLexicon(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.SaveLexicon("empty", testFingerprint, nil))

	loaded, err := store.LoadLexicon("empty", testFingerprint)
	require.NoError(t, err)
	assert.NotNil(t, loaded, "a stored empty lexicon is a hit, not a miss")
	assert.Empty(t, loaded)
}

func TestStore_LoadMissing_ReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.LoadLexicon("nope", testFingerprint)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_StaleFingerprint_ReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveLexicon("k", testFingerprint, makeTestEntries()))

	resized := testFingerprint
	resized.Size++
	loaded, err := store.LoadLexicon("k", resized)
	require.NoError(t, err)
	assert.Nil(t, loaded, "size change invalidates the cached entries")

	touched := testFingerprint
	touched.ModTime += int64(time.Second)
	loaded, err = store.LoadLexicon("k", touched)
	require.NoError(t, err)
	assert.Nil(t, loaded, "mtime change invalidates the cached entries")
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveLexicon("k", testFingerprint, makeTestEntries()))

	newer := ports.Fingerprint{Size: 10, ModTime: 2}
	replacement := []ports.Entry{{Word: "only", Weight: 1}}
	require.NoError(t, store.SaveLexicon("k", newer, replacement))

	loaded, err := store.LoadLexicon("k", newer)
	require.NoError(t, err)
	assert.Equal(t, replacement, loaded)

	old, err := store.LoadLexicon("k", testFingerprint)
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestStore_KeyIsolation(t *testing.T) {
	store, _ := newTestStore(t)

	a := []ports.Entry{{Word: "alpha", Weight: 1}}
	b := []ports.Entry{{Word: "beta", Weight: 2}}
	require.NoError(t, store.SaveLexicon("subtlex:a.csv:SUBTLWF", testFingerprint, a))
	require.NoError(t, store.SaveLexicon("subtlex:a.csv:FREQcount", testFingerprint, b))

	loadedA, err := store.LoadLexicon("subtlex:a.csv:SUBTLWF", testFingerprint)
	require.NoError(t, err)
	loadedB, err := store.LoadLexicon("subtlex:a.csv:FREQcount", testFingerprint)
	require.NoError(t, err)

	assert.Equal(t, a, loadedA)
	assert.Equal(t, b, loadedB)
}

func TestStore_DeleteLexicon(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveLexicon("k", testFingerprint, makeTestEntries()))

	require.NoError(t, store.DeleteLexicon("k"))

	loaded, err := store.LoadLexicon("k", testFingerprint)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_DeleteLexicon_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)

	// Nothing ever saved: no root bucket yet
	assert.NoError(t, store.DeleteLexicon("never-existed"))

	require.NoError(t, store.SaveLexicon("k", testFingerprint, makeTestEntries()))
	require.NoError(t, store.DeleteLexicon("k"))
	assert.NoError(t, store.DeleteLexicon("k"))
}

func TestStore_ConcurrentReads(t *testing.T) {
	store, _ := newTestStore(t)
	original := makeTestEntries()
	require.NoError(t, store.SaveLexicon("k", testFingerprint, original))

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loaded, err := store.LoadLexicon("k", testFingerprint)
			if err != nil {
				errs <- err
				return
			}
			if len(loaded) != len(original) {
				errs <- fmt.Errorf("expected %d entries, got %d", len(original), len(loaded))
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent read error: %v", err)
	}
}

func TestStore_LargeLexicon_Performance(t *testing.T) {
	store, _ := newTestStore(t)

	const n = 75000
	entries := make([]ports.Entry, n)
	for i := range entries {
		entries[i] = ports.Entry{Word: fmt.Sprintf("word%06d", i), Weight: float64(i) / 7}
	}

	start := time.Now()
	require.NoError(t, store.SaveLexicon("large", testFingerprint, entries))
	saveTime := time.Since(start)

	start = time.Now()
	loaded, err := store.LoadLexicon("large", testFingerprint)
	loadTime := time.Since(start)
	require.NoError(t, err)

	require.Len(t, loaded, n)
	assert.Equal(t, entries[0], loaded[0])
	assert.Equal(t, entries[n-1], loaded[n-1])

	t.Logf("%d entries: save=%v load=%v", n, saveTime, loadTime)
}

func TestStore_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")

	store1, err := NewStore(path)
	require.NoError(t, err)
	original := makeTestEntries()
	require.NoError(t, store1.SaveLexicon("k", testFingerprint, original))
	require.NoError(t, store1.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	store2, err := NewStore(path)
	require.NoError(t, err)
	defer store2.Close()

	loaded, err := store2.LoadLexicon("k", testFingerprint)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

// =============================================================================
// Entry encoding
// =============================================================================

func TestDecodeEntries_Truncated(t *testing.T) {
	data, err := encodeEntries(makeTestEntries())
	require.NoError(t, err)

	_, err = decodeEntries(data[:3])
	assert.ErrorContains(t, err, "too short")

	_, err = decodeEntries(data[:5])
	assert.ErrorContains(t, err, "word length")

	_, err = decodeEntries(data[:7])
	assert.ErrorContains(t, err, "truncated at entry 0 word")

	_, err = decodeEntries(data[:len(data)-1])
	assert.ErrorContains(t, err, "weight")
}

func TestDecodeEntries_CorruptCount(t *testing.T) {
	// Claims a huge entry count with no payload behind it
	data := []byte{0xff, 0xff, 0xff, 0xff}
	_, err := decodeEntries(data)
	assert.Error(t, err)
}

func TestEncodeEntries_WordTooLong(t *testing.T) {
	long := make([]byte, 1<<16)
	for i := range long {
		long[i] = 'a'
	}
	_, err := encodeEntries([]ports.Entry{{Word: string(long), Weight: 1}})
	assert.ErrorContains(t, err, "word too long")
}

// =============================================================================
// Lock contention: the 1s timeout prevents hangs
// =============================================================================

func TestStore_OpenTimeout_DoesNotHang(t *testing.T) {
	// A second open while another handle holds the exclusive lock should
	// time out in about a second.
	dir := t.TempDir()
	path := filepath.Join(dir, "locked.db")

	store1, err := NewStore(path)
	require.NoError(t, err)
	defer store1.Close()

	start := time.Now()
	store2, err := NewStore(path)
	elapsed := time.Since(start)

	require.Error(t, err, "second open should fail with lock timeout")
	assert.Nil(t, store2, "store should be nil on timeout")
	assert.Contains(t, err.Error(), "bbolt open")
	assert.Contains(t, err.Error(), "timeout")
	assert.Less(t, elapsed, 3*time.Second, "should complete within 3s, not hang")
	assert.GreaterOrEqual(t, elapsed, 900*time.Millisecond, "should wait ~1s for the configured timeout")
}

func TestStore_OpenAfterClose_Succeeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "released.db")

	store1, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store1.SaveLexicon("k", testFingerprint, makeTestEntries()))
	store1.Close()

	start := time.Now()
	store2, err := NewStore(path)
	elapsed := time.Since(start)

	require.NoError(t, err, "open after close should succeed")
	require.NotNil(t, store2)
	defer store2.Close()
	assert.Less(t, elapsed, 500*time.Millisecond, "should open instantly after lock released")

	loaded, err := store2.LoadLexicon("k", testFingerprint)
	require.NoError(t, err)
	assert.Len(t, loaded, 4)
}
