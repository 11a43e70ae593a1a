// Package subtlex loads SUBTLEX word-frequency CSV files into typed columns.
// Pure function of the file: path in, validated table out. The whole file is
// checked at Open, so a returned Importer never holds a bad row.
package subtlex

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corey/ngram/internal/domain/lexicon"
	"github.com/corey/ngram/internal/ports"
)

// utf8BOM is stripped from the first header name when present.
const utf8BOM = "\uFEFF"

// Importer is a parsed SUBTLEX table.
type Importer struct {
	path    string
	columns map[string]int // column name -> index in each row
	wordIdx int
	rows    [][]Value
}

// Open reads and validates the CSV file at path.
//
// It fails when the file cannot be opened or is empty, when the header
// does not match Schema (missing, unexpected or duplicate columns), when a
// row's width differs from the header, when a value does not parse as its
// column type, and when a word is empty, non-alphabetic or duplicated after
// lowercasing. Errors wrap the ports error taxonomy.
func Open(path string) (*Importer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("subtlex: %w: %v", ports.ErrInputUnreadable, err)
	}
	defer f.Close()

	im, err := read(f, path)
	if err != nil {
		return nil, fmt.Errorf("subtlex: %s: %w", path, err)
	}
	return im, nil
}

func read(r io.Reader, path string) (*Importer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // width is checked against the header below

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ports.ErrInputUnreadable)
	}
	if err != nil {
		return nil, readError(err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	im := &Importer{
		path:    path,
		columns: make(map[string]int, len(header)),
	}
	for i, name := range header {
		im.columns[name] = i
	}
	im.wordIdx = im.columns[WordColumn]

	seen := lexicon.Seen{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(err)
		}
		line, _ := cr.FieldPos(0)

		if len(record) != len(header) {
			return nil, fmt.Errorf("line %d: %w: row has %d columns, header has %d",
				line, ports.ErrSchema, len(record), len(header))
		}

		word, err := lexicon.Normalize(record[im.wordIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := seen.Mark(word); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		record[im.wordIdx] = word

		row := make([]Value, len(record))
		for i, raw := range record {
			v, err := parseValue(raw, header[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row[i] = v
		}
		im.rows = append(im.rows, row)
	}
	return im, nil
}

// readError classifies a csv read failure.
func readError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %v", ports.ErrSchema, err)
	}
	return fmt.Errorf("%w: %v", ports.ErrInputUnreadable, err)
}

// Path returns the file the table was read from.
func (im *Importer) Path() string { return im.path }

// Len returns the number of words (rows) in the table.
func (im *Importer) Len() int { return len(im.rows) }

// Get returns the value of column for every word.
// An unknown column yields an empty map, never an error.
func (im *Importer) Get(column string) map[string]Value {
	colIdx, ok := im.columns[column]
	if !ok {
		return map[string]Value{}
	}
	result := make(map[string]Value, len(im.rows))
	for _, row := range im.rows {
		result[row[im.wordIdx].Text] = row[colIdx]
	}
	return result
}

// Lexicon returns the words weighted by a numeric column (Int or Float).
func (im *Importer) Lexicon(column string) (lexicon.Static, error) {
	typ, ok := Schema[column]
	if !ok {
		return nil, fmt.Errorf("subtlex: %w: unknown column %q", ports.ErrSchema, column)
	}
	if typ == Text {
		return nil, fmt.Errorf("subtlex: %w: column %q is %s, not numeric", ports.ErrSchema, column, typ)
	}

	weights := make(map[string]float64, len(im.rows))
	for word, v := range im.Get(column) {
		weights[word], _ = v.Number()
	}
	return lexicon.FromMap(weights), nil
}
