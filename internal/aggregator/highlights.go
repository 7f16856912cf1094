package aggregator

import (
	"math"
	"sort"
)

// topPostCount is how many posts the highlight lists hold.
const topPostCount = 5

// BuildHighlights ranks the posts of every reported platform by engagement.
// Ties keep post order, and across platforms, report order.
func BuildHighlights(report *Report) Highlights {
	h := Highlights{
		Platforms: []PlatformHighlights{},
		TopPosts:  []RankedPost{},
	}
	if report == nil {
		return h
	}

	var all []RankedPost
	for _, name := range report.Platforms {
		s, ok := report.PlatformData[name]
		if !ok || s == nil {
			continue
		}

		ranked := make([]RankedPost, 0, len(s.Posts))
		var total int64
		for _, p := range s.Posts {
			e := p.Engagement()
			total += e
			ranked = append(ranked, RankedPost{Platform: name, Post: p, Engagement: e})
		}
		all = append(all, ranked...)

		ph := PlatformHighlights{Platform: name, TopPosts: topN(ranked, topPostCount)}
		if len(ranked) > 0 {
			ph.AverageEngagement = math.Round(float64(total)/float64(len(ranked))*10) / 10
			top := ph.TopPosts[0]
			ph.TopPost = &top
		}
		h.Platforms = append(h.Platforms, ph)
	}

	h.TopPosts = topN(all, topPostCount)
	return h
}

// topN returns the n most engaging posts without reordering the input.
func topN(posts []RankedPost, n int) []RankedPost {
	sorted := append([]RankedPost(nil), posts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Engagement > sorted[j].Engagement
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []RankedPost{}
	}
	return sorted
}
