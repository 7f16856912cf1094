// Package filter narrows normalized posts before aggregation.
//
// This package enables reportmix to:
// - Keep only posts inside an inclusive calendar day range
// - Drop near-identical posts that scrapers return more than once
package filter

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gauthierbraillon/reportmix/internal/social"
	"github.com/gauthierbraillon/reportmix/internal/timestamp"
)

// dedupeKeyLen is the number of normalized characters compared when looking
// for duplicates.
const dedupeKeyLen = 100

// Filter applies the date-range and duplicate rules. It holds no state
// between calls and is safe for concurrent use.
type Filter struct {
	norm *timestamp.Normalizer
	log  logrus.FieldLogger
}

// New creates a Filter. A nil logger discards diagnostics.
func New(norm *timestamp.Normalizer, log logrus.FieldLogger) *Filter {
	if norm == nil {
		norm = timestamp.New(nil)
	}
	if log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		log = discard
	}
	return &Filter{norm: norm, log: log}
}

// ByDateRange returns the posts whose timestamp falls between the start of
// StartDate and the last millisecond of EndDate, in input order. Posts with
// an unparseable timestamp are kept. Without a complete range posts are
// returned unchanged.
func (f *Filter) ByDateRange(posts []social.Post, dr *social.DateRange) []social.Post {
	if !dr.Complete() {
		f.log.Debug("no date range provided, keeping all posts")
		return posts
	}

	start, startErr := f.norm.Day(dr.StartDate)
	endDay, endErr := f.norm.Day(dr.EndDate)
	boundsValid := startErr == nil && endErr == nil
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, int(999*time.Millisecond), f.norm.Location())

	if boundsValid {
		f.log.WithFields(logrus.Fields{"start": start.Format(time.RFC3339), "end": end.Format(time.RFC3339Nano)}).Debug("filtering posts by date range")
	} else {
		f.log.WithFields(logrus.Fields{"start_date": dr.StartDate, "end_date": dr.EndDate}).Warn("date range bounds are not calendar dates, only undated posts will be kept")
	}

	filtered := make([]social.Post, 0, len(posts))
	for i, post := range posts {
		entry := f.log.WithField("index", i+1)

		postTime, ok := f.norm.Parse(post.Timestamp)
		if !ok {
			entry.WithField("raw", post.Timestamp).Trace("no valid date, included")
			filtered = append(filtered, post)
			continue
		}

		inRange := boundsValid && !postTime.Before(start) && !postTime.After(end)
		entry.WithFields(logrus.Fields{
			"timestamp": postTime.Format(time.RFC3339),
			"in_range":  inRange,
			"text":      preview(post.Text, 40),
		}).Trace("date range check")

		if inRange {
			filtered = append(filtered, post)
		}
	}

	f.log.WithFields(logrus.Fields{"before": len(posts), "after": len(filtered)}).Debug("date range filter result")
	return filtered
}

// Deduplicate drops posts whose DedupeKey matches an earlier post. Posts
// without text are always kept. The first occurrence wins.
func (f *Filter) Deduplicate(posts []social.Post, platform string) []social.Post {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(posts))
	unique := make([]social.Post, 0, len(posts))

	for _, post := range posts {
		key := dedupeKey(lower, post.Text)
		if key == "" {
			unique = append(unique, post)
			continue
		}
		if _, dup := seen[key]; dup {
			f.log.WithFields(logrus.Fields{"platform": platform, "text": preview(post.Text, 50)}).Debug("duplicate removed")
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, post)
	}

	if len(unique) < len(posts) {
		f.log.WithFields(logrus.Fields{"platform": platform, "before": len(posts), "after": len(unique)}).Debug("deduplication result")
	}
	return unique
}

// DedupeKey lower-cases text, collapses whitespace runs to one space, trims
// it and keeps the first 100 characters.
func DedupeKey(text string) string {
	return dedupeKey(cases.Lower(language.Und), text)
}

func dedupeKey(lower cases.Caser, text string) string {
	key := strings.Join(strings.Fields(lower.String(text)), " ")
	if r := []rune(key); len(r) > dedupeKeyLen {
		key = string(r[:dedupeKeyLen])
	}
	return key
}

func preview(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}
