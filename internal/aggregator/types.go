// Package aggregator turns cleaned posts into report-ready statistics.
//
// This package enables reportmix to:
// - Sum engagement per platform using that platform's vocabulary
// - Combine every platform summary into one report with global totals
// - Rank posts by engagement for report highlights
// - Merge posts from all platforms into one chronological feed
package aggregator

import (
	"time"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

// Report is the cross-platform result handed to report generation, charts
// and storage. Platforms keeps processing order.
type Report struct {
	Platforms       []string `json:"platforms" yaml:"platforms"`
	TotalPosts      int      `json:"totalPosts" yaml:"totalPosts"`
	TotalEngagement int64    `json:"totalEngagement" yaml:"totalEngagement"`

	// EngagementExcludingViews matches the chart calculation, which leaves
	// views out.
	EngagementExcludingViews int64 `json:"engagementExcludingViews" yaml:"engagementExcludingViews"`

	PlatformData map[string]*social.Summary `json:"platformData" yaml:"platformData"`
	DateRange    *social.DateRange          `json:"dateRange" yaml:"dateRange"`
}

// PlatformEngagement is one row of the per-platform comparison.
type PlatformEngagement struct {
	Platform   string `json:"name" yaml:"name"`
	Posts      int    `json:"posts" yaml:"posts"`
	Engagement int64  `json:"engagement" yaml:"engagement"`
}

// RankedPost is a post with the platform it came from and its engagement.
type RankedPost struct {
	Platform   string      `json:"platform" yaml:"platform"`
	Post       social.Post `json:"post" yaml:"post"`
	Engagement int64       `json:"engagement" yaml:"engagement"`
}

// PlatformHighlights summarises the best performing posts of one platform.
type PlatformHighlights struct {
	Platform          string       `json:"platform" yaml:"platform"`
	AverageEngagement float64      `json:"averageEngagement" yaml:"averageEngagement"`
	TopPost           *RankedPost  `json:"topPost,omitempty" yaml:"topPost,omitempty"`
	TopPosts          []RankedPost `json:"topPosts" yaml:"topPosts"`
}

// Highlights are the per-platform and global top posts of a report.
type Highlights struct {
	Platforms []PlatformHighlights `json:"platforms" yaml:"platforms"`
	TopPosts  []RankedPost         `json:"topPosts" yaml:"topPosts"`
}

// FeedItem is a cleaned post placed on the timeline. PublishedAt is zero when
// the post timestamp could not be parsed.
type FeedItem struct {
	Platform    string      `json:"platform" yaml:"platform"`
	Post        social.Post `json:"post" yaml:"post"`
	PublishedAt time.Time   `json:"published_at" yaml:"published_at"`
}

// FeedOptions configures feed retrieval.
type FeedOptions struct {
	Limit     int
	Since     time.Time
	Until     time.Time
	Platforms []string
}
