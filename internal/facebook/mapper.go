package facebook

import "github.com/gauthierbraillon/reportmix/internal/social"

// Mapper converts Facebook post records.
type Mapper struct{}

// NewMapper creates a Facebook mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Platform returns social.Facebook.
func (m *Mapper) Platform() social.Platform {
	return social.Facebook
}

// Vocabulary reports likes, comments and shares with per-post averages.
func (m *Mapper) Vocabulary() social.Vocabulary {
	return social.Vocabulary{
		Likes:    social.Likes,
		Comments: social.Comments,
		Shares:   social.Shares,
		Averages: true,
	}
}

// Map converts each record into a post.
func (m *Mapper) Map(records social.Records, username string) social.Batch {
	posts := make([]social.Post, 0, len(records))
	for _, r := range records {
		posts = append(posts, social.Post{
			ID:        social.String(r, idFields),
			Text:      social.String(r, textFields),
			Likes:     social.Int(r, likesFields),
			Comments:  social.Int(r, commentsFields),
			Shares:    social.Int(r, sharesFields),
			Timestamp: social.Value(r, timestampFields),
			URL:       social.String(r, urlFields),
			Hashtags:  []string{},
			Mentions:  []string{},
		})
	}
	return social.Batch{Username: username, Posts: posts}
}
