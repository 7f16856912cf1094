// Package aggregator tests document the expected behavior of summaries,
// combined reports and the feed.
//
// Test requirements (this file serves as documentation):
// - Totals are reported under each platform's own vocabulary
// - Combined reports skip missing and failed platforms
// - Total engagement includes views, the views-excluded figure does not
// - Combining the same summaries twice gives byte-identical output
// - The feed shows the newest posts first across platforms
package aggregator

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauthierbraillon/reportmix/internal/social"
	"github.com/gauthierbraillon/reportmix/internal/timestamp"
)

var (
	linkedInVocab = social.Vocabulary{Likes: social.Reactions, Comments: social.Comments, Shares: social.Shares}
	twitterVocab  = social.Vocabulary{Likes: social.Likes, Comments: social.Replies, Shares: social.Retweets, Views: social.Views}
	tiktokVocab   = social.Vocabulary{Likes: social.Likes, Comments: social.Comments, Shares: social.Shares, Views: social.Views, Averages: true}
)

func total(t *testing.T, s *social.Summary, m social.Metric) int64 {
	t.Helper()
	v, ok := s.Total(m)
	require.True(t, ok, "metric %d should be reported", m)
	return v
}

func TestAC300_Summarize_UsesPlatformVocabulary(t *testing.T) {
	batch := social.Batch{Username: "acme", Posts: []social.Post{
		{ID: "1", Likes: 10, Comments: 2, Shares: 1},
		{ID: "2", Likes: 5, Comments: 0, Shares: 3},
	}}

	s := Summarize(social.LinkedIn, linkedInVocab, batch, nil)

	assert.Equal(t, "LinkedIn", s.Platform)
	assert.Equal(t, "acme", s.Username)
	assert.Equal(t, 2, s.TotalPosts)
	assert.Equal(t, int64(15), total(t, s, social.Reactions), "user should see likes reported as reactions")
	assert.Equal(t, int64(2), total(t, s, social.Comments))
	assert.Equal(t, int64(4), total(t, s, social.Shares))
	assert.Nil(t, s.TotalLikes)
	assert.Nil(t, s.TotalViews)
	assert.Nil(t, s.AvgLikes, "LinkedIn does not report averages")
}

func TestAC301_Summarize_TwitterReportsRetweetsAndReplies(t *testing.T) {
	batch := social.Batch{Posts: []social.Post{{Likes: 4, Comments: 3, Shares: 2, Views: 100}}}

	s := Summarize(social.Twitter, twitterVocab, batch, nil)

	assert.Equal(t, int64(4), total(t, s, social.Likes))
	assert.Equal(t, int64(3), total(t, s, social.Replies))
	assert.Equal(t, int64(2), total(t, s, social.Retweets))
	assert.Equal(t, int64(100), total(t, s, social.Views))
	assert.Nil(t, s.TotalComments)
	assert.Nil(t, s.TotalShares)
}

func TestAC302_Summarize_AveragesRoundToNearest(t *testing.T) {
	batch := social.Batch{Posts: []social.Post{{Likes: 1, Comments: 1}, {Likes: 2, Comments: 0}}}

	s := Summarize(social.TikTok, tiktokVocab, batch, nil)

	require.NotNil(t, s.AvgLikes)
	assert.Equal(t, int64(2), *s.AvgLikes, "1.5 rounds up")
	assert.Equal(t, int64(1), *s.AvgComments, "0.5 rounds up")
}

func TestAC303_Summarize_EmptyInputYieldsZeros(t *testing.T) {
	dr := &social.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-07"}

	s := Summarize(social.TikTok, tiktokVocab, social.Batch{}, dr)

	assert.NotNil(t, s.Posts, "posts should serialize as an empty list")
	assert.Empty(t, s.Posts)
	assert.Equal(t, 0, s.TotalPosts)
	assert.Equal(t, int64(0), total(t, s, social.Likes))
	assert.Equal(t, int64(0), *s.AvgLikes)
	assert.Same(t, dr, s.DateRange)
}

func TestAC304_Summarize_CarriesBatchError(t *testing.T) {
	s := Summarize(social.Twitter, twitterVocab, social.Batch{Error: "demo data"}, nil)

	assert.True(t, s.Failed())
	assert.Equal(t, 0, s.TotalPosts)
}

func summary(platform string, posts int, totals map[social.Metric]int64) *social.Summary {
	s := &social.Summary{Platform: platform, TotalPosts: posts, Posts: []social.Post{}}
	for m, v := range totals {
		s.SetTotal(m, v)
	}
	return s
}

func TestAC310_Combine_SkipsMissingAndFailedPlatforms(t *testing.T) {
	demo := summary("Twitter", 0, map[social.Metric]int64{social.Likes: 0})
	demo.Error = "Twitter scraper returned demo data - may be rate limited or require paid plan"

	report := Combine([]*social.Summary{
		summary("LinkedIn", 1, map[social.Metric]int64{social.Reactions: 10, social.Comments: 2, social.Shares: 1}),
		nil,
		demo,
		summary("TikTok", 2, map[social.Metric]int64{social.Likes: 5, social.Comments: 1, social.Shares: 1, social.Views: 100}),
	})

	assert.Equal(t, []string{"LinkedIn", "TikTok"}, report.Platforms, "user should see platforms in processing order")
	assert.Equal(t, 3, report.TotalPosts)
	assert.Equal(t, int64(120), report.TotalEngagement, "total engagement includes views")
	assert.Equal(t, int64(20), report.EngagementExcludingViews)
	assert.NotContains(t, report.PlatformData, "Twitter")
}

func TestAC311_Combine_RepliesAreNotEngagement(t *testing.T) {
	report := Combine([]*social.Summary{
		summary("Twitter", 1, map[social.Metric]int64{social.Likes: 4, social.Replies: 3, social.Retweets: 2, social.Views: 10}),
	})

	assert.Equal(t, int64(16), report.TotalEngagement)
	assert.Equal(t, int64(6), report.EngagementExcludingViews)
}

func TestAC312_Combine_FirstDateRangeWins(t *testing.T) {
	first := &social.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-07"}
	second := &social.DateRange{StartDate: "2024-01-01", EndDate: "2024-01-07"}
	a := summary("LinkedIn", 0, nil)
	b := summary("Facebook", 0, nil)
	b.DateRange = first
	c := summary("TikTok", 0, nil)
	c.DateRange = second

	report := Combine([]*social.Summary{a, b, c})

	assert.Same(t, first, report.DateRange)
}

func TestAC313_Combine_EmptyInput(t *testing.T) {
	report := Combine(nil)

	assert.NotNil(t, report.Platforms)
	assert.NotNil(t, report.PlatformData)
	assert.Nil(t, report.DateRange)

	out, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"platforms":[],"totalPosts":0,"totalEngagement":0,"engagementExcludingViews":0,"platformData":{},"dateRange":null}`, string(out))
}

func TestAC314_Combine_IsIdempotent(t *testing.T) {
	build := func() []*social.Summary {
		li := Summarize(social.LinkedIn, linkedInVocab, social.Batch{Username: "acme", Posts: []social.Post{
			{ID: "u1", Text: "Hello world", Likes: 10, Comments: 2, Shares: 1, Timestamp: json.Number("1700000000000")},
		}}, nil)
		tt := Summarize(social.TikTok, tiktokVocab, social.Batch{Posts: []social.Post{{ID: "v1", Likes: 3, Views: 9}}}, nil)
		return []*social.Summary{li, tt}
	}
	inputs := build()

	first, err := json.Marshal(Combine(inputs))
	require.NoError(t, err)
	second, err := json.Marshal(Combine(inputs))
	require.NoError(t, err)
	rebuilt, err := json.Marshal(Combine(build()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, string(first), string(rebuilt), "re-deriving from the same raw input should give the same report")
}

func TestAC315_Breakdown_ExcludesViews(t *testing.T) {
	report := Combine([]*social.Summary{
		summary("TikTok", 2, map[social.Metric]int64{social.Likes: 5, social.Comments: 1, social.Shares: 1, social.Views: 100}),
		summary("LinkedIn", 1, map[social.Metric]int64{social.Reactions: 10}),
	})

	rows := Breakdown(report)

	assert.Equal(t, []PlatformEngagement{
		{Platform: "TikTok", Posts: 2, Engagement: 7},
		{Platform: "LinkedIn", Posts: 1, Engagement: 10},
	}, rows)
	assert.Empty(t, Breakdown(nil))
}

func TestAC320_Highlights_RanksPostsByEngagement(t *testing.T) {
	li := &social.Summary{Platform: "LinkedIn", Posts: []social.Post{
		{ID: "l1", Likes: 1},
		{ID: "l2", Likes: 10, Comments: 5},
		{ID: "l3", Likes: 15},
	}}
	tw := &social.Summary{Platform: "Twitter", Posts: []social.Post{
		{ID: "t1", Likes: 100, Views: 1_000_000},
	}}

	h := BuildHighlights(Combine([]*social.Summary{li, tw}))

	require.Len(t, h.Platforms, 2)
	assert.Equal(t, "l2", h.Platforms[0].TopPost.Post.ID, "the first post with the highest engagement wins ties")
	assert.Equal(t, 10.3, h.Platforms[0].AverageEngagement)
	assert.Equal(t, []string{"l2", "l3", "l1"}, rankedIDs(h.Platforms[0].TopPosts))
	assert.Equal(t, []string{"t1", "l2", "l3", "l1"}, rankedIDs(h.TopPosts), "views do not count as engagement")
	assert.Equal(t, "Twitter", h.TopPosts[0].Platform)
}

func TestAC321_Highlights_KeepsTopFive(t *testing.T) {
	posts := make([]social.Post, 0, 8)
	for i := 0; i < 8; i++ {
		posts = append(posts, social.Post{ID: string(rune('a' + i)), Likes: int64(i)})
	}

	h := BuildHighlights(Combine([]*social.Summary{{Platform: "Facebook", Posts: posts}}))

	assert.Equal(t, []string{"h", "g", "f", "e", "d"}, rankedIDs(h.Platforms[0].TopPosts))
	assert.Len(t, h.TopPosts, 5)
}

func TestAC322_Highlights_EmptyPlatform(t *testing.T) {
	h := BuildHighlights(Combine([]*social.Summary{{Platform: "Facebook", Posts: []social.Post{}}}))

	require.Len(t, h.Platforms, 1)
	assert.Nil(t, h.Platforms[0].TopPost)
	assert.Equal(t, 0.0, h.Platforms[0].AverageEngagement)
	assert.NotNil(t, h.TopPosts)
}

func rankedIDs(posts []RankedPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Post.ID)
	}
	return out
}

func feedIDs(items []FeedItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Post.ID)
	}
	return out
}

func TestAC330_Feed_ShowsNewestItemsFirstAcrossPlatforms(t *testing.T) {
	agg := New(timestamp.New(time.UTC))
	agg.AddSummary(&social.Summary{Platform: "LinkedIn", Posts: []social.Post{
		{ID: "li-old", Timestamp: "2025-01-01T10:00:00Z"},
		{ID: "li-undated"},
	}})
	agg.AddSummary(&social.Summary{Platform: "TikTok", Posts: []social.Post{
		{ID: "tt-new", Timestamp: json.Number("1736330400")},
		{ID: "tt-mid", Timestamp: "2025-01-05 09:00:00"},
	}})

	feed := agg.GetFeed(FeedOptions{})

	assert.Equal(t, []string{"tt-new", "tt-mid", "li-old", "li-undated"}, feedIDs(feed),
		"user should see newest posts first and undated posts last")
}

func TestAC331_Feed_FiltersByPlatformAndLimit(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	agg := New(timestamp.New(time.UTC))
	agg.AddItems([]FeedItem{
		{Platform: "LinkedIn", Post: social.Post{ID: "li1"}, PublishedAt: now.Add(-1 * time.Hour)},
		{Platform: "Twitter", Post: social.Post{ID: "tw1"}, PublishedAt: now.Add(-2 * time.Hour)},
		{Platform: "LinkedIn", Post: social.Post{ID: "li2"}, PublishedAt: now.Add(-3 * time.Hour)},
		{Platform: "LinkedIn", Post: social.Post{ID: "li3"}, PublishedAt: now.Add(-4 * time.Hour)},
	})

	feed := agg.GetFeed(FeedOptions{Platforms: []string{"linkedin"}, Limit: 2})

	assert.Equal(t, []string{"li1", "li2"}, feedIDs(feed))
}

func TestAC332_Feed_ShowsOnlyItemsWithinDateRange(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	agg := New(timestamp.New(time.UTC))
	agg.AddItems([]FeedItem{
		{Post: social.Post{ID: "recent"}, PublishedAt: now.Add(-1 * time.Hour)},
		{Post: social.Post{ID: "yesterday"}, PublishedAt: now.Add(-25 * time.Hour)},
		{Post: social.Post{ID: "undated"}},
	})

	feed := agg.GetFeed(FeedOptions{Since: now.Add(-26 * time.Hour), Until: now.Add(-23 * time.Hour)})

	assert.Equal(t, []string{"yesterday"}, feedIDs(feed))
}

func TestAC333_Feed_SkipsFailedSummariesAndReturnsEmptySlice(t *testing.T) {
	agg := New(nil)
	agg.AddSummary(&social.Summary{Platform: "Twitter", Error: "demo", Posts: []social.Post{{ID: "x"}}})
	agg.AddReport(nil)

	feed := agg.GetFeed(FeedOptions{})

	assert.NotNil(t, feed, "user should get an empty feed, not nil")
	assert.Empty(t, feed)
}
