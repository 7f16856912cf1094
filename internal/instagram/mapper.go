package instagram

import (
	"fmt"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

// Mapper converts Instagram profile scraper records.
type Mapper struct{}

// NewMapper creates an Instagram mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Platform returns social.Instagram.
func (m *Mapper) Platform() social.Platform {
	return social.Instagram
}

// Vocabulary reports likes and comments with per-post averages.
func (m *Mapper) Vocabulary() social.Vocabulary {
	return social.Vocabulary{
		Likes:    social.Likes,
		Comments: social.Comments,
		Averages: true,
	}
}

// Map reads posts from the first record's latestPosts. The profile username
// wins over the requested one. An empty dataset yields no posts and no
// profile metrics.
func (m *Mapper) Map(records social.Records, username string) social.Batch {
	if len(records) == 0 {
		return social.Batch{Username: username, Posts: []social.Post{}}
	}

	profile := records[0]
	batch := social.Batch{
		Username: username,
		Posts:    []social.Post{},
		Profile: &social.ProfileMetrics{
			FollowersCount: social.Int(profile, followersFields),
			FollowsCount:   social.Int(profile, followsFields),
			PostsCount:     social.Int(profile, postsCount),
			Verified:       social.Bool(profile, verifiedFields),
		},
	}
	if name := social.String(profile, usernameFields); name != "" {
		batch.Username = name
	}

	items, _ := social.Array(profile, postsField)
	for _, item := range items {
		batch.Posts = append(batch.Posts, mapPost(social.RecordFrom(item)))
	}
	return batch
}

func mapPost(r social.Record) social.Post {
	caption := social.String(r, captionFields)

	post := social.Post{
		ID:        social.String(r, idFields),
		Type:      social.String(r, typeFields),
		Text:      caption,
		Likes:     social.Int(r, likesFields),
		Comments:  social.Int(r, commentsFields),
		Timestamp: social.Value(r, timestampFields),
		URL:       social.String(r, urlFields),
		Hashtags:  social.Hashtags(caption),
		Mentions:  social.Mentions(caption),
	}
	if post.Type == "" {
		post.Type = defaultPostType
	}
	if post.URL == "" {
		if code := social.String(r, shortCodeFields); code != "" {
			post.URL = fmt.Sprintf(postURLFormat, code)
		}
	}
	return post
}
