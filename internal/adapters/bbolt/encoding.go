// Binary encoding for cached lexicon entries.
//
// Entry list format (little-endian):
//
//	entryCount: uint32
//	per entry:
//	  wordLen: uint16
//	  word:    [wordLen]byte
//	  weight:  uint64 (IEEE 754 bits of the float64 weight)
package bbolt

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/corey/ngram/internal/ports"
)

// weightSize is the byte size of an encoded weight.
const weightSize = 8

// encodeEntries encodes entries in order. A single buffer is pre-allocated
// to avoid repeated growth.
func encodeEntries(entries []ports.Entry) ([]byte, error) {
	// Header: 4 bytes (entryCount)
	// Per entry: 2 (wordLen) + len(word) + 8 (weight)
	totalSize := 4
	for _, e := range entries {
		totalSize += 2 + len(e.Word) + weightSize
	}

	buf := make([]byte, totalSize)
	offset := 0

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(entries)))
	offset += 4

	for _, e := range entries {
		if len(e.Word) > math.MaxUint16 {
			return nil, fmt.Errorf("word too long: %d bytes", len(e.Word))
		}
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(e.Word)))
		offset += 2
		copy(buf[offset:], e.Word)
		offset += len(e.Word)

		binary.LittleEndian.PutUint64(buf[offset:], math.Float64bits(e.Weight))
		offset += weightSize
	}

	return buf, nil
}

// decodeEntries decodes an entry list. Every read is bounds-checked to
// avoid panics on corrupt data.
func decodeEntries(data []byte) ([]ports.Entry, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("entry list too short: %d bytes", len(data))
	}

	offset := 0
	count := binary.LittleEndian.Uint32(data[offset:])
	offset += 4

	// Each entry takes at least 2+weightSize bytes; cap the allocation by what
	// the data can actually hold.
	capacity := uint64(count)
	if limit := uint64(len(data)-offset) / (2 + weightSize); capacity > limit {
		capacity = limit
	}
	entries := make([]ports.Entry, 0, capacity)

	for i := uint32(0); i < count; i++ {
		if offset+2 > len(data) {
			return nil, fmt.Errorf("truncated at entry %d word length (offset %d)", i, offset)
		}
		wordLen := int(binary.LittleEndian.Uint16(data[offset:]))
		offset += 2

		if offset+wordLen > len(data) {
			return nil, fmt.Errorf("truncated at entry %d word (offset %d, need %d)", i, offset, wordLen)
		}
		word := string(data[offset : offset+wordLen])
		offset += wordLen

		if offset+weightSize > len(data) {
			return nil, fmt.Errorf("truncated at entry %d weight (offset %d)", i, offset)
		}
		weight := math.Float64frombits(binary.LittleEndian.Uint64(data[offset:]))
		offset += weightSize

		entries = append(entries, ports.Entry{Word: word, Weight: weight})
	}

	return entries, nil
}
