// Package contracts holds sample scraper payloads for every record shape
// reportmix has stored.
//
// Stored reports are re-cleaned with the current mappers, so each shape here
// must keep producing the same posts. Contract tests run every payload
// through the cleaning pipeline.
package contracts

import (
	"encoding/json"
	"fmt"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

// Contract is one scraper payload and the platform it was fetched for.
type Contract struct {
	Name     string
	Platform social.Platform
	Payload  string
}

// Records decodes the payload into scraper records.
func (c Contract) Records() (social.Records, error) {
	var rs social.Records
	if err := json.Unmarshal([]byte(c.Payload), &rs); err != nil {
		return nil, fmt.Errorf("failed to decode %s contract: %w", c.Name, err)
	}
	return rs, nil
}

// RawResult wraps the payload the way the fetch step hands it over.
func (c Contract) RawResult(username string) (social.RawResult, error) {
	rs, err := c.Records()
	if err != nil {
		return social.RawResult{}, err
	}
	return social.RawResult{Platform: c.Platform, Username: username, Data: rs}, nil
}

// InstagramProfileContract is a profile scraper result with embedded posts.
const InstagramProfileContract = `[
  {
    "username": "acme",
    "followersCount": 1200,
    "followsCount": 80,
    "postsCount": 42,
    "verified": true,
    "latestPosts": [
      {
        "id": "3301",
        "shortCode": "C1a2b3",
        "type": "Sidecar",
        "caption": "New office #launch with @acme_team",
        "likesCount": 120,
        "commentsCount": 8,
        "timestamp": "2025-01-03T10:00:00.000Z",
        "url": "https://www.instagram.com/p/C1a2b3/"
      },
      {
        "shortCode": "C4d5e6",
        "caption": "Behind the scenes",
        "likesCount": 30,
        "commentsCount": 1,
        "timestamp": "2025-01-02T18:30:00.000Z"
      }
    ]
  }
]`

// LinkedInCurrentContract is the current LinkedIn post scraper shape.
const LinkedInCurrentContract = `[
  {
    "activity_urn": "7280000000000000001",
    "full_urn": "urn:li:activity:7280000000000000001",
    "text": "We are hiring #golang engineers",
    "stats": {"total_reactions": 45, "comments": 6, "reposts": 3},
    "posted_at": {"timestamp": 1735984800000, "date": "2025-01-04 10:00:00"},
    "post_url": "https://www.linkedin.com/posts/acme_activity-7280000000000000001"
  }
]`

// LinkedInLegacyContract is the shape an earlier LinkedIn scraper stored.
const LinkedInLegacyContract = `[
  {
    "urn": "urn:li:share:6900000000000000002",
    "commentary": {"text": {"text": "Quarterly results are out"}},
    "reactionsCount": 19,
    "commentsCount": 2,
    "sharesCount": 1,
    "createdAt": "2025-01-05T09:15:00Z",
    "permalink": "https://www.linkedin.com/feed/update/urn:li:share:6900000000000000002"
  }
]`

// FacebookPageContract is a page posts scraper result.
const FacebookPageContract = `[
  {
    "postId": "1029384756",
    "text": "Store opening this weekend",
    "likes": 64,
    "comments": [{"text": "See you there"}],
    "commentsCount": 5,
    "shares": 7,
    "time": "Saturday, January 4, 2025 at 9:00 AM",
    "timestamp": 1735981200,
    "url": "https://www.facebook.com/acme/posts/1029384756"
  },
  {
    "post_id": "1029384757",
    "message": "Thanks for coming",
    "reactionsCount": 12,
    "comments": {"total_count": 3},
    "sharesCount": 0,
    "created_time": "2025-01-06T12:00:00+0000",
    "permalink_url": "https://www.facebook.com/acme/posts/1029384757"
  }
]`

// TwitterTweetContract is a tweet scraper result with entities.
const TwitterTweetContract = `[
  {
    "tweet_id": "1876000000000000001",
    "text": "Shipping reportmix today #golang",
    "favorites": 88,
    "retweets": 12,
    "replies": 4,
    "views": "4521",
    "created_at": "2025-01-06T08:30:00.000Z",
    "entities": {
      "hashtags": [{"text": "golang"}],
      "user_mentions": []
    }
  }
]`

// TwitterDemoContract is the placeholder result a rate limited scraper
// returns.
const TwitterDemoContract = `[
  {"demo": true, "text": "This is demo data", "favorites": 1000}
]`

// TikTokProfileContract is a profile videos scraper result.
const TikTokProfileContract = `[
  {
    "id": "7450000000000000001",
    "text": "Office dance challenge #fun #dance",
    "description": "Office dance challenge #fun #dance",
    "diggCount": 0,
    "likes": 410,
    "comments": 33,
    "shares": 21,
    "views": 9800,
    "timestamp": "2025-01-05T12:00:00Z",
    "webVideoUrl": "https://www.tiktok.com/@acme/video/7450000000000000001",
    "music": {"title": "original sound - acme"}
  },
  {
    "aweme_id": "7450000000000000002",
    "desc": "Desk setup tour",
    "digg_count": 120,
    "comment_count": 4,
    "share_count": 2,
    "play_count": 2300,
    "create_time": 1735725600,
    "share_url": "https://www.tiktok.com/@acme/video/7450000000000000002",
    "music_title": "lofi beat"
  }
]`

// All returns every contract.
func All() []Contract {
	return []Contract{
		{Name: "instagram profile", Platform: social.Instagram, Payload: InstagramProfileContract},
		{Name: "linkedin current", Platform: social.LinkedIn, Payload: LinkedInCurrentContract},
		{Name: "linkedin legacy", Platform: social.LinkedIn, Payload: LinkedInLegacyContract},
		{Name: "facebook page", Platform: social.Facebook, Payload: FacebookPageContract},
		{Name: "twitter tweets", Platform: social.Twitter, Payload: TwitterTweetContract},
		{Name: "twitter demo", Platform: social.Twitter, Payload: TwitterDemoContract},
		{Name: "tiktok profile", Platform: social.TikTok, Payload: TikTokProfileContract},
	}
}
