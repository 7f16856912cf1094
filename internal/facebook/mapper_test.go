package facebook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

func TestAC410_Facebook_MapsCandidateFields(t *testing.T) {
	var records social.Records
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": "1", "text": "Open today", "likes": 7, "commentsCount": 2, "shares": 1, "timestamp": "2025-01-04T10:00:00Z", "url": "https://fb/1"},
		{"postId": "2", "message": "Graph shape", "reactions": {"total_count": 9}, "comments": {"total_count": 3}, "sharesCount": 4, "created_time": "2025-01-05T08:00:00+0000", "permalink_url": "https://fb/2"},
		{"post_id": "3", "description": "Counts only", "reactionsCount": 2, "comments": 6, "createdTime": 1736000000, "link": "https://fb/3"}
	]`), &records))

	batch := NewMapper().Map(records, "cafe")

	require.Len(t, batch.Posts, 3)
	assert.Equal(t, social.Post{
		ID: "1", Text: "Open today", Likes: 7, Comments: 2, Shares: 1,
		Timestamp: "2025-01-04T10:00:00Z", URL: "https://fb/1", Hashtags: []string{}, Mentions: []string{},
	}, batch.Posts[0])

	assert.Equal(t, "2", batch.Posts[1].ID)
	assert.Equal(t, "Graph shape", batch.Posts[1].Text)
	assert.Equal(t, int64(9), batch.Posts[1].Likes, "user should see nested reaction totals")
	assert.Equal(t, int64(3), batch.Posts[1].Comments)
	assert.Equal(t, int64(4), batch.Posts[1].Shares)
	assert.Equal(t, "https://fb/2", batch.Posts[1].URL)

	assert.Equal(t, "3", batch.Posts[2].ID)
	assert.Equal(t, int64(6), batch.Posts[2].Comments, "a bare comments count is used last")
	assert.Equal(t, json.Number("1736000000"), batch.Posts[2].Timestamp)
	assert.Equal(t, "https://fb/3", batch.Posts[2].URL)
}

func TestAC411_Facebook_CommentListIsNotACount(t *testing.T) {
	records := social.Records{{"comments": []any{map[string]any{"text": "hi"}}}}

	batch := NewMapper().Map(records, "cafe")

	assert.Equal(t, int64(0), batch.Posts[0].Comments)
}
