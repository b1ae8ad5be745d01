// Package records defines the loosely-typed row shape returned by record
// store backends and the single numeric normalization boundary applied to it.
//
// The remote store encodes numbers inconsistently: the same column may arrive
// as a JSON number, a numeric string, or be absent entirely. Every consumer
// goes through Numeric (or NumericOr) so that aggregation never has to care.
package records

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Row is one record from a store collection, keyed by column name.
type Row map[string]any

// Numeric returns the field's value as a float64, or 0 when the field is
// absent, null, or unparsable.
func (r Row) Numeric(field string) float64 {
	return r.NumericOr(field, 0)
}

// NumericOr returns the field's value as a float64, or def when the field is
// absent, null, or unparsable.
func (r Row) NumericOr(field string, def float64) float64 {
	if r == nil {
		return def
	}
	if v, ok := parseFloatAny(r[field]); ok {
		return v
	}
	return def
}

// String returns the field rendered as a string, or "" when absent or null.
// Numeric values are formatted compactly so display fields tolerate either
// encoding.
func (r Row) String(field string) string {
	if r == nil {
		return ""
	}
	switch t := r[field].(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
