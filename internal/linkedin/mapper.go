package linkedin

import "github.com/gauthierbraillon/reportmix/internal/social"

// Mapper converts LinkedIn post records.
type Mapper struct{}

// NewMapper creates a LinkedIn mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Platform returns social.LinkedIn.
func (m *Mapper) Platform() social.Platform {
	return social.LinkedIn
}

// Vocabulary reports likes as reactions.
func (m *Mapper) Vocabulary() social.Vocabulary {
	return social.Vocabulary{
		Likes:    social.Reactions,
		Comments: social.Comments,
		Shares:   social.Shares,
	}
}

// Map converts each record into a post. Missing fields become zero values.
func (m *Mapper) Map(records social.Records, username string) social.Batch {
	posts := make([]social.Post, 0, len(records))
	for _, r := range records {
		posts = append(posts, social.Post{
			ID:        social.String(r, idFields),
			Text:      social.String(r, textFields),
			Likes:     social.Int(r, reactionsFields),
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
