// Package twitter maps X/Twitter scraper output to posts.
//
// This package enables reportmix to:
// - Reject placeholder results that rate-limited scrapers return
// - Read likes, retweets, replies and string-encoded view counts
// - Prefer structured hashtag and mention entities over text matching
package twitter

import "github.com/gauthierbraillon/reportmix/internal/social"

// DemoDataError annotates a fetch whose scraper returned placeholder data.
const DemoDataError = "Twitter scraper returned demo data - may be rate limited or require paid plan"

const statusURLFormat = "https://x.com/%s/status/%s"

// Candidate fields, first present wins.
var (
	demoField = social.Paths("demo")

	idFields        = social.Paths("tweet_id", "id_str", "id", "tweetId")
	statusIDFields  = social.Paths("tweet_id", "id_str", "id")
	textFields      = social.Paths("text", "full_text", "content")
	entityTextField = social.Paths("text", "full_text")
	likesFields     = social.Paths("favorites", "favorite_count", "likes", "like_count")
	repliesFields   = social.Paths("replies", "reply_count", "replies_count")
	retweetsFields  = social.Paths("retweets", "retweet_count")
	viewsFields     = social.Paths("views", "views_count")
	timestampFields = social.Paths("created_at", "timestamp", "createdAt")
	urlFields       = social.Paths("url", "permalink")

	hashtagEntities = social.Paths("entities.hashtags")
	mentionEntities = social.Paths("entities.user_mentions")
	hashtagText     = social.Paths("text", "tag")
	mentionName     = social.Paths("screen_name")
)
