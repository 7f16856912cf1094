// Package instagram maps Instagram profile scraper output to posts.
//
// This package enables reportmix to:
// - Unwrap the profile object that carries the latest posts
// - Extract captions, likes, comments, hashtags and mentions per post
// - Report account level follower metrics
package instagram

import "github.com/gauthierbraillon/reportmix/internal/social"

// Candidate fields, first present wins.
var (
	postsField = social.Paths("latestPosts")

	idFields        = social.Paths("id", "shortCode")
	shortCodeFields = social.Paths("shortCode")
	typeFields      = social.Paths("type")
	captionFields   = social.Paths("caption")
	likesFields     = social.Paths("likesCount")
	commentsFields  = social.Paths("commentsCount")
	timestampFields = social.Paths("timestamp")
	urlFields       = social.Paths("url")

	usernameFields  = social.Paths("username")
	followersFields = social.Paths("followersCount")
	followsFields   = social.Paths("followsCount")
	postsCount      = social.Paths("postsCount")
	verifiedFields  = social.Paths("verified")
)

const (
	defaultPostType = "photo"
	postURLFormat   = "https://www.instagram.com/p/%s/"
)
