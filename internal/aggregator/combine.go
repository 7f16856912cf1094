package aggregator

import "github.com/gauthierbraillon/reportmix/internal/social"

// engagementMetrics are the summary totals that count as engagement in a
// combined report. Replies are reported per platform only.
var engagementMetrics = []social.Metric{
	social.Likes,
	social.Comments,
	social.Reactions,
	social.Retweets,
	social.Shares,
	social.Views,
}

// Combine folds platform summaries into one report. Nil summaries and
// summaries carrying an error are skipped. Platforms keep iteration order
// and the first non-nil date range wins. Inputs are not modified.
func Combine(summaries []*social.Summary) *Report {
	report := &Report{
		Platforms:    make([]string, 0, len(summaries)),
		PlatformData: make(map[string]*social.Summary, len(summaries)),
	}

	for _, s := range summaries {
		if s == nil || s.Failed() {
			continue
		}

		report.Platforms = append(report.Platforms, s.Platform)
		report.PlatformData[s.Platform] = s
		report.TotalPosts += s.TotalPosts

		for _, m := range engagementMetrics {
			v, ok := s.Total(m)
			if !ok {
				continue
			}
			report.TotalEngagement += v
			if m != social.Views {
				report.EngagementExcludingViews += v
			}
		}

		if report.DateRange == nil && s.DateRange != nil {
			report.DateRange = s.DateRange
		}
	}
	return report
}

// Breakdown returns one row per reported platform, in report order, with
// engagement excluding views.
func Breakdown(report *Report) []PlatformEngagement {
	if report == nil {
		return []PlatformEngagement{}
	}

	rows := make([]PlatformEngagement, 0, len(report.Platforms))
	for _, name := range report.Platforms {
		s, ok := report.PlatformData[name]
		if !ok || s == nil {
			continue
		}
		rows = append(rows, PlatformEngagement{
			Platform:   name,
			Posts:      s.TotalPosts,
			Engagement: engagementExcludingViews(s),
		})
	}
	return rows
}

func engagementExcludingViews(s *social.Summary) int64 {
	var sum int64
	for _, m := range engagementMetrics {
		if m == social.Views {
			continue
		}
		if v, ok := s.Total(m); ok {
			sum += v
		}
	}
	return sum
}
