package tiktok

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

func TestAC430_TikTok_MapsVideoShapes(t *testing.T) {
	var records social.Records
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": "v1", "description": "Dance #fyp #fun", "likes": 100, "comments": 5, "shares": 2, "views": 5000, "timestamp": 1736000000, "url": "https://tt/v1", "music": {"title": "Song"}},
		{"aweme_id": "v2", "desc": "Old api #retro", "digg_count": 8, "comment_count": 1, "share_count": 1, "play_count": 90, "create_time": 1736100000, "webVideoUrl": "https://tt/v2", "music_title": "Beat"},
		{"video_id": "v3", "caption": "caption only #nope", "like_count": 3, "view_count": 30, "created_at": "2025-01-06T10:00:00Z", "share_url": "https://tt/v3"}
	]`), &records))

	batch := NewMapper().Map(records, "dancer")

	require.Len(t, batch.Posts, 3)
	assert.Equal(t, social.Post{
		ID: "v1", Text: "Dance #fyp #fun", Likes: 100, Comments: 5, Shares: 2, Views: 5000,
		Timestamp: json.Number("1736000000"), URL: "https://tt/v1",
		Hashtags: []string{"#fyp", "#fun"}, Mentions: []string{}, Music: "Song",
	}, batch.Posts[0])

	second := batch.Posts[1]
	assert.Equal(t, "v2", second.ID)
	assert.Equal(t, int64(8), second.Likes)
	assert.Equal(t, int64(90), second.Views)
	assert.Equal(t, "Beat", second.Music)
	assert.Equal(t, []string{"#retro"}, second.Hashtags)

	third := batch.Posts[2]
	assert.Equal(t, "caption only #nope", third.Text)
	assert.Empty(t, third.Hashtags, "user should see hashtags from descriptions only")
	assert.Equal(t, "https://tt/v3", third.URL)
	assert.Equal(t, "", third.Music)
}

func TestAC431_TikTok_Vocabulary(t *testing.T) {
	v := NewMapper().Vocabulary()

	assert.Equal(t, social.Views, v.Views)
	assert.True(t, v.Averages)
}
