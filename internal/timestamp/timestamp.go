// Package timestamp converts the timestamp values found in scraped posts into
// instants.
//
// Scraping actors disagree on how they encode time. This package enables
// reportmix to accept:
// - Unix epochs in seconds or milliseconds, given as numbers
// - "YYYY-MM-DD HH:MM:SS" strings (LinkedIn style)
// - ISO-8601 and most other human date strings
// - values that are already a time.Time
package timestamp

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// millisThreshold separates epoch seconds (10 digits until year ~2286) from
// epoch milliseconds (13 digits).
const millisThreshold = 10_000_000_000

// maxEpochMillis is the largest instant a JavaScript Date can hold; stored
// reports were produced by that runtime, so larger values are invalid.
const maxEpochMillis = 8.64e15

// DayLayout is the calendar date format used by date ranges.
const DayLayout = "2006-01-02"

const spaceSeparatedLayout = "2006-01-02T15:04:05"

var spaceSeparated = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

// digitsOnly matches strings that only look like epochs. Epochs must be
// numeric values, so these never parse.
var digitsOnly = regexp.MustCompile(`^\d+$`)

// Normalizer parses raw timestamp values. Zone-less strings and calendar days
// are interpreted in its location.
type Normalizer struct {
	loc *time.Location
}

// New creates a Normalizer for the given location. A nil location means
// time.Local.
func New(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Location returns the location used for zone-less values.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Parse returns the instant represented by value. The boolean is false when
// value cannot be interpreted as a point in time; Parse never panics.
func (n *Normalizer) Parse(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromEpoch(f)
	case float64:
		return fromEpoch(v)
	case float32:
		return fromEpoch(float64(v))
	case int:
		return fromEpoch(float64(v))
	case int32:
		return fromEpoch(float64(v))
	case int64:
		return fromEpoch(float64(v))
	case uint:
		return fromEpoch(float64(v))
	case uint32:
		return fromEpoch(float64(v))
	case uint64:
		return fromEpoch(float64(v))
	case string:
		return n.parseString(v)
	default:
		return time.Time{}, false
	}
}

// Day returns midnight at the start of the calendar day date (YYYY-MM-DD).
func (n *Normalizer) Day(date string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, date, n.loc)
}

func (n *Normalizer) parseString(s string) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}

	if spaceSeparated.MatchString(s) {
		iso := strings.Replace(s, " ", "T", 1)
		if t, err := time.ParseInLocation(spaceSeparatedLayout, iso, n.loc); err == nil {
			return t, true
		}
	}

	trimmed := strings.TrimSpace(s)
	if digitsOnly.MatchString(trimmed) {
		return time.Time{}, false
	}

	t, err := dateparse.ParseIn(trimmed, n.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// fromEpoch interprets f as seconds when below millisThreshold, otherwise as
// milliseconds. Fractional milliseconds are truncated.
func fromEpoch(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}

	ms := f
	if f < millisThreshold {
		ms = f * 1000
	}
	if math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}
