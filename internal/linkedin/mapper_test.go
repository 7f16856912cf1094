// Package linkedin tests document the expected behavior of the LinkedIn mapper.
//
// Test requirements (this file serves as documentation):
// - Mapper reads every stored LinkedIn record shape
// - Mapper reports likes as reactions
// - Mapper prefers numeric posted_at timestamps
// - Mapper never fails on malformed records
package linkedin

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

func decode(t *testing.T, raw string) social.Records {
	t.Helper()
	var rs social.Records
	require.NoError(t, json.Unmarshal([]byte(raw), &rs))
	return rs
}

// TestMapper_CurrentScraperShape documents the current record shape:
// - activity_urn, stats and posted_at are read
// - post_url becomes the post URL
func TestMapper_CurrentScraperShape(t *testing.T) {
	records := decode(t, `[{
		"activity_urn": "u1",
		"text": "Hello world",
		"stats": {"total_reactions": 10, "comments": 2, "reposts": 1},
		"posted_at": {"timestamp": 1700000000000, "date": "2023-11-14 22:13:20"},
		"post_url": "https://x"
	}]`)

	batch := NewMapper().Map(records, "acme")

	require.Len(t, batch.Posts, 1)
	post := batch.Posts[0]
	assert.Equal(t, "u1", post.ID)
	assert.Equal(t, "Hello world", post.Text)
	assert.Equal(t, int64(10), post.Likes)
	assert.Equal(t, int64(2), post.Comments)
	assert.Equal(t, int64(1), post.Shares)
	assert.Equal(t, json.Number("1700000000000"), post.Timestamp)
	assert.Equal(t, "https://x", post.URL)
	assert.Equal(t, "acme", batch.Username)
}

// TestMapper_LegacyShapes documents older record shapes that are still stored:
// - Nested commentary text and flat counters
// - Share URNs and createdAt timestamps
func TestMapper_LegacyShapes(t *testing.T) {
	records := decode(t, `[
		{"urn": "urn:li:share:9", "commentary": {"text": {"text": "nested"}}, "reactionsCount": 3, "commentsCount": 4, "sharesCount": 5, "createdAt": "2025-01-02", "shareUrl": "https://share"},
		{"full_urn": "urn:li:activity:8", "commentary": "flat", "posted_at": {"date": "2025-01-03 10:00:00"}, "permalink": "https://perma"}
	]`)

	batch := NewMapper().Map(records, "acme")

	require.Len(t, batch.Posts, 2)
	assert.Equal(t, social.Post{
		ID: "urn:li:share:9", Text: "nested", Likes: 3, Comments: 4, Shares: 5,
		Timestamp: "2025-01-02", URL: "https://share", Hashtags: []string{}, Mentions: []string{},
	}, batch.Posts[0])
	assert.Equal(t, "urn:li:activity:8", batch.Posts[1].ID)
	assert.Equal(t, "flat", batch.Posts[1].Text)
	assert.Equal(t, "2025-01-03 10:00:00", batch.Posts[1].Timestamp)
	assert.Equal(t, "https://perma", batch.Posts[1].URL)
}

// TestMapper_MalformedRecords documents degradation:
// - Scalars and empty objects become empty posts with text ""
func TestMapper_MalformedRecords(t *testing.T) {
	batch := NewMapper().Map(decode(t, `[42, {}, {"stats": "broken", "text": null}]`), "acme")

	require.Len(t, batch.Posts, 3)
	for _, p := range batch.Posts {
		assert.Equal(t, "", p.Text)
		assert.Zero(t, p.Engagement())
		assert.Nil(t, p.Timestamp)
	}
}

func TestMapper_Vocabulary(t *testing.T) {
	v := NewMapper().Vocabulary()

	assert.Equal(t, social.Reactions, v.Likes)
	assert.Equal(t, social.NoMetric, v.Views)
	assert.False(t, v.Averages)
	assert.Equal(t, social.LinkedIn, NewMapper().Platform())
}
