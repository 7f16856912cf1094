// Package facebook maps Facebook page scraper output to posts.
package facebook

import "github.com/gauthierbraillon/reportmix/internal/social"

// Candidate fields, first present wins. comments is last because some
// scrapers store the comment list rather than a count there.
var (
	idFields        = social.Paths("id", "postId", "post_id")
	textFields      = social.Paths("text", "message", "description")
	likesFields     = social.Paths("likes", "reactionsCount", "reactions.total_count")
	commentsFields  = social.Paths("commentsCount", "comments.total_count", "comments")
	sharesFields    = social.Paths("shares", "sharesCount")
	timestampFields = social.Paths("timestamp", "created_time", "createdTime")
	urlFields       = social.Paths("url", "permalink_url", "permalink", "link")
)
