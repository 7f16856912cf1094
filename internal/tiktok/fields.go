// Package tiktok maps TikTok profile scraper output to posts.
package tiktok

import "github.com/gauthierbraillon/reportmix/internal/social"

// Candidate fields, first present wins.
var (
	idFields          = social.Paths("id", "aweme_id", "video_id")
	descriptionFields = social.Paths("description", "desc", "caption")
	hashtagTextFields = social.Paths("description", "desc")
	likesFields       = social.Paths("likes", "digg_count", "like_count")
	commentsFields    = social.Paths("comments", "comment_count")
	sharesFields      = social.Paths("shares", "share_count")
	viewsFields       = social.Paths("views", "play_count", "view_count")
	timestampFields   = social.Paths("timestamp", "create_time", "created_at")
	urlFields         = social.Paths("url", "webVideoUrl", "video_url", "share_url")
	musicFields       = social.Paths("music.title", "music_title")
)
