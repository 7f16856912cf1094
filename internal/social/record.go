package social

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Record is one opaque object from a scraper dataset. Nested objects are
// map[string]any and numbers are json.Number when decoded through Records.
type Record map[string]any

// Records is a scraper dataset. Elements that are not objects decode to empty
// records and a non-array value decodes to an empty dataset, so a malformed
// dataset degrades to defaults instead of failing the batch.
type Records []Record

// UnmarshalJSON decodes a dataset keeping numbers as json.Number.
func (r *Records) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*r = RecordsFrom(v)
	return nil
}

// RecordsFrom converts a decoded JSON value into a dataset. nil stays nil.
func RecordsFrom(v any) Records {
	switch items := v.(type) {
	case nil:
		return nil
	case Records:
		return items
	case []Record:
		return Records(items)
	case []map[string]any:
		out := make(Records, 0, len(items))
		for _, item := range items {
			out = append(out, Record(item))
		}
		return out
	case []any:
		out := make(Records, 0, len(items))
		for _, item := range items {
			out = append(out, RecordFrom(item))
		}
		return out
	default:
		return Records{}
	}
}

// RecordFrom converts a decoded JSON value into a record; non-objects become
// an empty record.
func RecordFrom(v any) Record {
	switch m := v.(type) {
	case Record:
		return m
	case map[string]any:
		return Record(m)
	default:
		return Record{}
	}
}

// Get walks a dot separated path ("stats.total_reactions").
func (r Record) Get(path string) (any, bool) {
	var cur any = map[string]any(r)
	for _, key := range strings.Split(path, ".") {
		var m map[string]any
		switch node := cur.(type) {
		case map[string]any:
			m = node
		case Record:
			m = node
		default:
			return nil, false
		}
		next, ok := m[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Accessor extracts one candidate value for an attribute.
type Accessor func(Record) (any, bool)

// Path returns an accessor reading a dot separated path.
func Path(path string) Accessor {
	return func(r Record) (any, bool) {
		return r.Get(path)
	}
}

// Paths builds an ordered candidate list, first present wins.
func Paths(paths ...string) []Accessor {
	out := make([]Accessor, 0, len(paths))
	for _, p := range paths {
		out = append(out, Path(p))
	}
	return out
}

// Value returns the first truthy candidate unchanged, or nil.
func Value(r Record, fields []Accessor) any {
	for _, field := range fields {
		if v, ok := field(r); ok && truthy(v) {
			return v
		}
	}
	return nil
}

// String returns the first non-empty scalar candidate as a string. Objects,
// arrays and booleans are skipped.
func String(r Record, fields []Accessor) string {
	for _, field := range fields {
		v, ok := field(r)
		if !ok || !truthy(v) {
			continue
		}
		if s, ok := toString(v); ok && s != "" {
			return s
		}
	}
	return ""
}

// Int returns the first candidate that converts to a non-zero integer.
// Negative counts are clamped to zero.
func Int(r Record, fields []Accessor) int64 {
	for _, field := range fields {
		v, ok := field(r)
		if !ok || !truthy(v) {
			continue
		}
		if n, ok := toInt64(v); ok && n != 0 {
			return max(n, 0)
		}
	}
	return 0
}

// Bool returns the first candidate that is a true boolean.
func Bool(r Record, fields []Accessor) bool {
	for _, field := range fields {
		if v, ok := field(r); ok {
			if b, ok := v.(bool); ok && b {
				return true
			}
		}
	}
	return false
}

// Array returns the first candidate that is a JSON array, and whether one was
// found. An empty array still counts as found.
func Array(r Record, fields []Accessor) ([]any, bool) {
	for _, field := range fields {
		if v, ok := field(r); ok {
			if items, ok := v.([]any); ok {
				return items, true
			}
		}
	}
	return nil, false
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

func toString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool, map[string]any, Record, []any:
		return "", false
	default:
		s, err := cast.ToStringE(x)
		return s, err == nil
	}
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, true
		}
		if f, err := x.Float64(); err == nil {
			return int64(f), true
		}
		return 0, false
	case string:
		if n, err := cast.ToInt64E(strings.TrimSpace(x)); err == nil {
			return n, true
		}
		return leadingInt(x)
	case bool, map[string]any, Record, []any:
		return 0, false
	default:
		n, err := cast.ToInt64E(x)
		return n, err == nil
	}
}

// leadingInt parses the integer prefix of s ("1,234" -> 1, "12.5K" -> 12).
func leadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
