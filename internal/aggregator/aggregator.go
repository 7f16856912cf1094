package aggregator

import (
	"sort"
	"strings"

	"github.com/gauthierbraillon/reportmix/internal/social"
	"github.com/gauthierbraillon/reportmix/internal/timestamp"
)

// Aggregator merges cleaned posts from every platform into one timeline.
type Aggregator struct {
	norm  *timestamp.Normalizer
	items []FeedItem
}

// New creates a new Aggregator. A nil normalizer uses local time.
func New(norm *timestamp.Normalizer) *Aggregator {
	if norm == nil {
		norm = timestamp.New(nil)
	}
	return &Aggregator{
		norm:  norm,
		items: make([]FeedItem, 0),
	}
}

// AddItems adds feed items to the aggregator.
func (a *Aggregator) AddItems(items []FeedItem) {
	a.items = append(a.items, items...)
}

// AddSummary adds every post of a platform summary. Failed summaries add
// nothing.
func (a *Aggregator) AddSummary(s *social.Summary) {
	if s == nil || s.Failed() {
		return
	}
	items := make([]FeedItem, 0, len(s.Posts))
	for _, p := range s.Posts {
		item := FeedItem{Platform: s.Platform, Post: p}
		if t, ok := a.norm.Parse(p.Timestamp); ok {
			item.PublishedAt = t
		}
		items = append(items, item)
	}
	a.AddItems(items)
}

// AddReport adds every platform of a combined report in report order.
func (a *Aggregator) AddReport(r *Report) {
	if r == nil {
		return
	}
	for _, name := range r.Platforms {
		a.AddSummary(r.PlatformData[name])
	}
}

// GetFeed returns feed items newest first. Items without a publish time sort
// last and are dropped when Since or Until is set.
func (a *Aggregator) GetFeed(opts FeedOptions) []FeedItem {
	feed := make([]FeedItem, 0, len(a.items))
	for _, item := range a.items {
		if !opts.matches(item) {
			continue
		}
		feed = append(feed, item)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		ti, tj := feed[i].PublishedAt, feed[j].PublishedAt
		if ti.IsZero() != tj.IsZero() {
			return tj.IsZero()
		}
		return ti.After(tj)
	})

	if opts.Limit > 0 && len(feed) > opts.Limit {
		feed = feed[:opts.Limit]
	}
	return feed
}

func (o FeedOptions) matches(item FeedItem) bool {
	if len(o.Platforms) > 0 && !containsFold(o.Platforms, item.Platform) {
		return false
	}
	if !o.Since.IsZero() && (item.PublishedAt.IsZero() || item.PublishedAt.Before(o.Since)) {
		return false
	}
	if !o.Until.IsZero() && (item.PublishedAt.IsZero() || item.PublishedAt.After(o.Until)) {
		return false
	}
	return true
}

// containsFold matches platform display names and keys alike.
func containsFold(names []string, platform string) bool {
	for _, n := range names {
		if strings.EqualFold(n, platform) {
			return true
		}
	}
	return false
}
