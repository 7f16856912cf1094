package tiktok

import "github.com/gauthierbraillon/reportmix/internal/social"

// Mapper converts TikTok video records.
type Mapper struct{}

// NewMapper creates a TikTok mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Platform returns social.TikTok.
func (m *Mapper) Platform() social.Platform {
	return social.TikTok
}

// Vocabulary reports every counter including views, with per-post averages.
func (m *Mapper) Vocabulary() social.Vocabulary {
	return social.Vocabulary{
		Likes:    social.Likes,
		Comments: social.Comments,
		Shares:   social.Shares,
		Views:    social.Views,
		Averages: true,
	}
}

// Map converts each video into a post. Hashtags come from the description.
func (m *Mapper) Map(records social.Records, username string) social.Batch {
	posts := make([]social.Post, 0, len(records))
	for _, r := range records {
		posts = append(posts, social.Post{
			ID:        social.String(r, idFields),
			Text:      social.String(r, descriptionFields),
			Likes:     social.Int(r, likesFields),
			Comments:  social.Int(r, commentsFields),
			Shares:    social.Int(r, sharesFields),
			Views:     social.Int(r, viewsFields),
			Timestamp: social.Value(r, timestampFields),
			URL:       social.String(r, urlFields),
			Hashtags:  social.Hashtags(social.String(r, hashtagTextFields)),
			Mentions:  []string{},
			Music:     social.String(r, musicFields),
		})
	}
	return social.Batch{Username: username, Posts: posts}
}
