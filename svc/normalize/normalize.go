// Package normalize maps raw upstream rows onto stable output records using
// declarative field tables, then decodes them into model structs.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type Kind uint8

const (
	String Kind = iota
	Number
	Int
)

// Default is what a missing or unusable value becomes
type Default uint8

const (
	Zero Default = iota
	Null
)

type Field struct {
	To      string
	From    string
	Kind    Kind
	Default Default
}

type Table []Field

// placeholders upstreams use for "no value"
var blanks = []string{"", "-", "--", "NaN", "nan", "None", "<nil>", "null"}

// Apply maps every row through table, keeping at most limit records (0 = all).
// Order is preserved, nothing is sorted or deduplicated.
func Apply(rows []map[string]any, table Table, limit int) []map[string]any {
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]any, len(table))
		for _, f := range table {
			rec[f.To] = f.coerce(row[f.From])
		}
		out = append(out, rec)
	}
	return out
}

func (f Field) coerce(v any) any {
	switch f.Kind {
	case String:
		if s, ok := text(v); ok {
			return s
		}
		if f.Default == Null {
			return nil
		}
		return ""

	case Int:
		// counts keep a real 0, only blanks fall back
		if n, ok := parse(v); ok {
			return int(n)
		}
		if f.Default == Null {
			return nil
		}
		return 0

	default:
		if n, ok := number(v); ok {
			return n
		}
		if f.Default == Null {
			return nil
		}
		return 0.0
	}
}

func text(v any) (string, bool) {
	var s string
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		s = strings.TrimSpace(val)
	case float64:
		if math.IsNaN(val) {
			return "", false
		}
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		s = val.String()
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	default:
		return "", false
	}
	for _, b := range blanks {
		if s == b {
			return "", false
		}
	}
	return s, true
}

// number reports false for anything that is not a finite non-zero number
func number(v any) (float64, bool) {
	n, ok := parse(v)
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

// parse reports false for anything that is not a finite number
func parse(v any) (float64, bool) {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case float32:
		n = float64(val)
	case int:
		n = float64(val)
	case int64:
		n = float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Decode normalized records into out, a pointer to a slice of model structs
func Decode(records []map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(records)
}
