// Package social defines the data model shared by the cleaning pipeline.
//
// This package enables reportmix to:
// - Describe raw scraper output per platform (RawResult, Records)
// - Probe loosely shaped records with ordered field accessors
// - Represent normalized posts and per-platform summaries
package social

// Platform identifies a supported social network by its request key.
type Platform string

const (
	Instagram Platform = "instagram"
	LinkedIn  Platform = "linkedin"
	Facebook  Platform = "facebook"
	Twitter   Platform = "twitter"
	TikTok    Platform = "tiktok"
)

var displayNames = map[Platform]string{
	Instagram: "Instagram",
	LinkedIn:  "LinkedIn",
	Facebook:  "Facebook",
	Twitter:   "Twitter",
	TikTok:    "TikTok",
}

// Platforms returns every supported platform in a stable order.
func Platforms() []Platform {
	return []Platform{Instagram, LinkedIn, Facebook, Twitter, TikTok}
}

// Known reports whether p is a supported platform.
func (p Platform) Known() bool {
	_, ok := displayNames[p]
	return ok
}

// DisplayName returns the label used in summaries and reports, or the raw key
// for unknown platforms.
func (p Platform) DisplayName() string {
	if name, ok := displayNames[p]; ok {
		return name
	}
	return string(p)
}
