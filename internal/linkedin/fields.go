// Package linkedin maps LinkedIn post scraper output to posts.
//
// NOTE: LinkedIn scrapers have shipped several record shapes over time.
// Every shape that has been stored must stay readable, so candidates are only
// ever appended.
//
// This package enables reportmix to:
// - Read post ids from activity or share URNs
// - Read post text from plain or nested commentary fields
// - Report likes as reactions alongside comments and reposts
package linkedin

import "github.com/gauthierbraillon/reportmix/internal/social"

// Candidate fields, first present wins.
var (
	idFields        = social.Paths("activity_urn", "full_urn", "id", "urn")
	textFields      = social.Paths("text", "commentary.text.text", "commentary")
	reactionsFields = social.Paths("stats.total_reactions", "reactionsCount")
	commentsFields  = social.Paths("stats.comments", "commentsCount")
	sharesFields    = social.Paths("stats.reposts", "sharesCount")
	// Numeric milliseconds are preferred over the date string.
	timestampFields = social.Paths("posted_at.timestamp", "posted_at.date", "timestamp", "createdAt")
	urlFields       = social.Paths("post_url", "url", "permalink", "shareUrl")
)
