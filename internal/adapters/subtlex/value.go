package subtlex

import (
	"fmt"
	"math"
	"strconv"

	"github.com/corey/ngram/internal/ports"
)

// Value is one typed cell. Only the field matching Type is set.
type Value struct {
	Type  ColumnType
	Int   int
	Float float64
	Text  string
}

// Number returns the value as float64 for Int and Float cells.
func (v Value) Number() (float64, bool) {
	switch v.Type {
	case Int:
		return float64(v.Int), true
	case Float:
		return v.Float, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.Type {
	case Int:
		return strconv.Itoa(v.Int)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return v.Text
	}
}

// parseValue converts raw according to the declared type of column.
func parseValue(raw, column string) (Value, error) {
	typ, ok := Schema[column]
	if !ok {
		return Value{}, fmt.Errorf("%w: unknown column type for %q", ports.ErrSchema, column)
	}

	switch typ {
	case Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: value %q for column %q: %v", ports.ErrValueParse, raw, column, err)
		}
		return Value{Type: Int, Int: n}, nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: value %q for column %q: %v", ports.ErrValueParse, raw, column, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("%w: value %q for column %q: not a finite number", ports.ErrValueParse, raw, column)
		}
		return Value{Type: Float, Float: f}, nil
	default:
		return Value{Type: Text, Text: raw}, nil
	}
}
