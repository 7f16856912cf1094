package twitter

import (
	"fmt"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

// Mapper converts tweet records.
type Mapper struct{}

// NewMapper creates a Twitter mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Platform returns social.Twitter.
func (m *Mapper) Platform() social.Platform {
	return social.Twitter
}

// Vocabulary reports comments as replies and shares as retweets.
func (m *Mapper) Vocabulary() social.Vocabulary {
	return social.Vocabulary{
		Likes:    social.Likes,
		Comments: social.Replies,
		Shares:   social.Retweets,
		Views:    social.Views,
	}
}

// Map converts each tweet into a post. When the first record is marked as
// demo data the whole batch is rejected with DemoDataError.
func (m *Mapper) Map(records social.Records, username string) social.Batch {
	if IsDemo(records) {
		return social.Batch{Username: username, Posts: []social.Post{}, Error: DemoDataError}
	}

	posts := make([]social.Post, 0, len(records))
	for _, r := range records {
		posts = append(posts, mapTweet(r, username))
	}
	return social.Batch{Username: username, Posts: posts}
}

// IsDemo reports whether the scraper returned placeholder data.
func IsDemo(records social.Records) bool {
	return len(records) > 0 && social.Bool(records[0], demoField)
}

func mapTweet(r social.Record, username string) social.Post {
	post := social.Post{
		ID:        social.String(r, idFields),
		Text:      social.String(r, textFields),
		Likes:     social.Int(r, likesFields),
		Comments:  social.Int(r, repliesFields),
		Shares:    social.Int(r, retweetsFields),
		Views:     social.Int(r, viewsFields),
		Timestamp: social.Value(r, timestampFields),
		URL:       social.String(r, urlFields),
	}
	if post.URL == "" {
		if id := social.String(r, statusIDFields); id != "" {
			post.URL = fmt.Sprintf(statusURLFormat, username, id)
		}
	}

	text := social.String(r, entityTextField)
	post.Hashtags = entities(r, hashtagEntities, hashtagText, "#", social.Hashtags, text)
	post.Mentions = entities(r, mentionEntities, mentionName, "@", social.Mentions, text)
	return post
}

// entities reads structured entities when the tweet has them, otherwise it
// falls back to matching text. An empty entity list is still authoritative.
func entities(r social.Record, list, name []social.Accessor, prefix string, fromText func(string) []string, text string) []string {
	items, ok := social.Array(r, list)
	if !ok {
		return fromText(text)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := social.String(social.RecordFrom(item), name); v != "" {
			out = append(out, prefix+v)
		}
	}
	return out
}
