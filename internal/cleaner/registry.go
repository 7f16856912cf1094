// Package cleaner runs raw scraper results through the cleaning pipeline.
//
// This package enables reportmix to:
// - Pick the mapper registered for each platform
// - Filter by date range, drop duplicates and summarize every platform
// - Process platforms one after another or concurrently
// - Re-derive a combined report from stored raw results
package cleaner

import (
	"github.com/gauthierbraillon/reportmix/internal/facebook"
	"github.com/gauthierbraillon/reportmix/internal/instagram"
	"github.com/gauthierbraillon/reportmix/internal/linkedin"
	"github.com/gauthierbraillon/reportmix/internal/social"
	"github.com/gauthierbraillon/reportmix/internal/tiktok"
	"github.com/gauthierbraillon/reportmix/internal/twitter"
)

// Mapper converts one platform's raw records into posts.
type Mapper interface {
	Platform() social.Platform
	Vocabulary() social.Vocabulary
	Map(records social.Records, username string) social.Batch
}

// Registry holds one mapper per platform key.
type Registry map[social.Platform]Mapper

// DefaultRegistry returns the mappers of every supported platform.
func DefaultRegistry() Registry {
	r := Registry{}
	r.Register(instagram.NewMapper())
	r.Register(linkedin.NewMapper())
	r.Register(facebook.NewMapper())
	r.Register(twitter.NewMapper())
	r.Register(tiktok.NewMapper())
	return r
}

// Register adds m under its platform, replacing any previous mapper.
func (r Registry) Register(m Mapper) {
	r[m.Platform()] = m
}

// Lookup returns the mapper for platform.
func (r Registry) Lookup(platform social.Platform) (Mapper, bool) {
	m, ok := r[platform]
	return m, ok
}
